package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Parse struct {
		// drop STYLE/REGION blocks instead of failing
		SkipUnsupported bool `yaml:"skip_unsupported"`
	} `yaml:"parse"`

	Output struct {
		// text or json
		Format string `yaml:"format"`
	} `yaml:"output"`

	Check struct {
		Concurrency int `yaml:"concurrency"`
	} `yaml:"check"`
}

func Default() Config {
	var c Config
	c.Output.Format = "text"
	c.Check.Concurrency = 4
	return c
}

// Load reads a YAML config file on top of the defaults. An empty path
// returns the defaults.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return c, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return c, nil
}

func (c Config) Validate() error {
	switch c.Output.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unsupported output format %q: use text or json", c.Output.Format)
	}
	if c.Check.Concurrency <= 0 {
		return fmt.Errorf("concurrency must be positive, got %d", c.Check.Concurrency)
	}
	return nil
}
