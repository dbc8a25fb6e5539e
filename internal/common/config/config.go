// internal/common/config/config.go
package config

// Config is the main application configuration struct.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Logging LoggingConfig `mapstructure:"logging"`
	Engine  EngineConfig  `mapstructure:"engine"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json or console
}

// EngineConfig points at the data files backing the requirement catalog
// and the exclusion phrase library. Empty paths mean compiled-in
// defaults are used unchanged.
type EngineConfig struct {
	CatalogFile       string `mapstructure:"catalog_file"`
	PhraseLibraryFile string `mapstructure:"phrase_library_file"`
}
