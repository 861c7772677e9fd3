package config

// Config represents the entire user configuration file.
// This stores registry query settings and user-defined sensor metadata.
type Config struct {
	Version       int               `yaml:"version"`
	ServiceClass  string            `yaml:"service_class,omitempty"`  // Registry class queried for sensors
	LuxProperty   string            `yaml:"lux_property,omitempty"`   // Property key holding the lux value
	WatchInterval int               `yaml:"watch_interval,omitempty"` // Watch refresh interval in seconds
	Nicknames     map[string]string `yaml:"nicknames,omitempty"`      // User-friendly names, keyed by service name
}

// Defaults matching the registry entries ambient light sensors are
// published under.
const (
	DefaultServiceClass  = "IOService"
	DefaultLuxProperty   = "CurrentLux"
	DefaultWatchInterval = 1
)

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Version:       1,
		ServiceClass:  DefaultServiceClass,
		LuxProperty:   DefaultLuxProperty,
		WatchInterval: DefaultWatchInterval,
		Nicknames:     make(map[string]string),
	}
}

// Nickname returns the user-defined nickname for a sensor service name, or
// an empty string when none is set.
func (c *Config) Nickname(serviceName string) string {
	if c.Nicknames == nil {
		return ""
	}
	return c.Nicknames[serviceName]
}

// DisplayName returns the nickname when one is set, the registry service
// name otherwise.
func (c *Config) DisplayName(serviceName string) string {
	if nick := c.Nickname(serviceName); nick != "" {
		return nick
	}
	return serviceName
}
