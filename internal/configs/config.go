package configs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/sealbox/sealbox/internal/crypto"
)

type UserConfig struct {
	Identity Identity `toml:"identity"`
	Defaults Defaults `toml:"defaults"`
}

type Identity struct {
	InstallID string `toml:"install_id"`
}

// Defaults holds the cost parameters applied when no flag overrides
// them. Decryption must use the same parameters as encryption; the
// container format does not record them.
type Defaults struct {
	CostN        int   `toml:"cost_n"`
	CostR        int   `toml:"cost_r"`
	CostP        int   `toml:"cost_p"`
	MaxMemoryMiB int64 `toml:"max_memory_mib"`
}

// DefaultConfig returns a configuration carrying the standard cost
// parameters and no install ID.
func DefaultConfig() *UserConfig {
	return &UserConfig{
		Defaults: Defaults{
			CostN:        crypto.DefaultN,
			CostR:        crypto.DefaultR,
			CostP:        crypto.DefaultP,
			MaxMemoryMiB: crypto.DefaultMaxMemory >> 20,
		},
	}
}

// Params converts the configured defaults into key derivation parameters.
func (c *UserConfig) Params() crypto.Params {
	return crypto.Params{
		N:         c.Defaults.CostN,
		R:         c.Defaults.CostR,
		P:         c.Defaults.CostP,
		MaxMemory: c.Defaults.MaxMemoryMiB << 20,
	}
}

// ConfigPath returns the path of the user config file.
func ConfigPath() string {
	return filepath.Join(UserSealboxSettings.UserConfigPath, "config.toml")
}

// LoadUserConfig loads the user configuration from the config file.
// When no config file exists, the defaults are returned. Fields absent
// from the file keep their default values.
func LoadUserConfig() (*UserConfig, error) {
	configPath := ConfigPath()

	config := DefaultConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadTOML(configPath, config); err != nil {
		return nil, fmt.Errorf("failed to load user config: %w", err)
	}

	return config, nil
}

// SaveUserConfig saves the user configuration to the config file.
func SaveUserConfig(config *UserConfig) error {
	if err := SaveTOML(ConfigPath(), config); err != nil {
		return fmt.Errorf("failed to save user config: %w", err)
	}

	return nil
}

// GenerateInstallID generates a new identifier for this installation.
func GenerateInstallID() string {
	return uuid.New().String()
}

// EnsureUserConfig ensures the user configuration exists on disk and
// has an install ID.
func EnsureUserConfig() (*UserConfig, error) {
	config, err := LoadUserConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load user config: %w", err)
	}

	if config.Identity.InstallID == "" {
		config.Identity.InstallID = GenerateInstallID()
		if err := SaveUserConfig(config); err != nil {
			return nil, fmt.Errorf("failed to save user config: %w", err)
		}
	}

	return config, nil
}
