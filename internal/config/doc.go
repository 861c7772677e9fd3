// Package config provides user configuration management for luxtap.
//
// This package manages a YAML-based configuration file that stores the
// registry query settings (service class, lux property key, watch refresh
// interval) and user-defined sensor nicknames. The configuration follows
// OS-specific conventions for storage location.
//
// # Configuration File Location
//
//   - Linux: $XDG_CONFIG_HOME/luxtap/config.yaml or $HOME/.config/luxtap/config.yaml
//   - macOS: $HOME/.config/luxtap/config.yaml
//   - Windows: %LOCALAPPDATA%\luxtap\config.yaml
//
// # Usage Example
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cfg.Nicknames["AmbientLightSensor"] = "Lid Sensor"
//	if err := cfg.Save(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// The global config uses sync.Once for safe initialization across
// goroutines. File operations are protected by a mutex to ensure atomic
// writes.
package config
