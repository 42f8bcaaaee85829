// Package configs manages the user-level configuration for sealbox.
//
// Configuration is stored in TOML format in the user config directory
// (for example ~/.config/sealbox/config.toml on Linux).
//
// # Contents
//
// The config file stores:
//   - An install ID, auto-generated on first use, recorded in audit
//     log entries
//   - Default cost parameters (cost_n, cost_r, cost_p, max_memory_mib)
//     applied when no command flag overrides them
//
// The cost parameters must match between encryption and decryption of
// the same file; the container format does not record them. Changing
// the defaults therefore affects which existing files can be opened
// without explicit flags.
//
// # Settings
//
// Global settings are initialized at startup:
//   - UserSealboxSettings: the user's config path, data path (audit
//     log location), and username
//
// Both paths follow the platform conventions of os.UserConfigDir and
// XDG_DATA_HOME.
package configs
