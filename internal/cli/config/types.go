// Package config provides configuration management for the themecheck CLI.
//
// Values are layered with koanf. Precedence, highest first: command-line
// flags, THEMECHECK_* environment variables, themecheck.yaml, defaults.
package config

// Config holds all CLI configuration options.
type Config struct {
	ThemeDir    string       `koanf:"theme_dir"`
	Format      string       `koanf:"format"`
	Output      string       `koanf:"output"` // report file; empty means stdout
	Verbose     bool         `koanf:"verbose"`
	LogLevel    string       `koanf:"log_level"`
	LogFormat   string       `koanf:"log_format"`
	MetricsFile string       `koanf:"metrics_file"`
	Ignore      []string     `koanf:"ignore"` // markers added to __MACOSX
	Engine      EngineConfig `koanf:"engine"`
}

// EngineConfig selects the checks the rule engine runs.
type EngineConfig struct {
	Builtin  bool     `koanf:"builtin"`
	RulesDir string   `koanf:"rules_dir"`
	Disabled []string `koanf:"disabled"`
}

// Default configuration values.
const (
	DefaultThemeDir  = "./test-theme/"
	DefaultFormat    = "workflow"
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// Config file names searched in the working directory.
var configFileNames = []string{"themecheck.yaml", "themecheck.yml"}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		ThemeDir:  DefaultThemeDir,
		Format:    DefaultFormat,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
		Engine:    EngineConfig{Builtin: true},
	}
}
