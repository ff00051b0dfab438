package config

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// Demo defaults: an empty script is valid and means the canonical
	// two-step demonstration, so nothing to fill in there.

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stderr"
	}
}
