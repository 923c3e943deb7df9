package sink

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config contains diagnostic output configuration.
type Config struct {
	Level     string `env:"DEFLOW_LOG_LEVEL"`
	Format    string `env:"DEFLOW_LOG_FORMAT"`
	Output    string `env:"DEFLOW_LOG_OUTPUT"`
	NoColor   bool   `env:"DEFLOW_LOG_NO_COLOR"`
	Timestamp bool   `env:"DEFLOW_LOG_TIMESTAMP" envDefault:"true"`
}

// ApplyDefaults applies default values to diagnostic configuration.
func (c *Config) ApplyDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = FormatConsole
	}
	if c.Output == "" {
		c.Output = "stderr"
	}
}
