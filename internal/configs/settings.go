package configs

import (
	"log"
	"os"
	"path/filepath"

	"github.com/sealbox/sealbox/internal/utils"
)

type UserSettings struct {
	UserConfigPath string
	UserDataPath   string
	Username       string
}

var UserSealboxSettings *UserSettings

func init() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("error getting home directory: %s", err)
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Fatalf("error getting config directory: %s", err)
	}

	dataDir := os.Getenv("XDG_DATA_HOME")

	if dataDir == "" {
		dataDir = filepath.Join(homeDir, ".local", "share")
	}

	username, err := utils.GetUsername()
	if err != nil {
		log.Fatalf("error getting username: %s", err)
	}

	// Independent of the working directory, so it is ok to init here
	UserSealboxSettings = &UserSettings{
		UserConfigPath: filepath.Join(configDir, "sealbox"),
		UserDataPath:   filepath.Join(dataDir, "sealbox"),
		Username:       username,
	}
}
