package driven

// ConfigStore provides read access to project configuration.
// Implementations handle persistence (e.g., TOML files) and type conversion.
// marketpub never writes its own configuration; the file is authored by hand.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	// Returns empty string if key doesn't exist or isn't a string.
	GetString(key string) string

	// Path returns the configuration file path.
	Path() string
}
