package config

import (
	"github.com/travigo/trias/pkg/transforms"
	"github.com/urfave/cli/v2"
)

const metadataKey = "config"

var Flag = &cli.StringFlag{
	Name:    "config",
	Usage:   "YAML configuration file",
	EnvVars: []string{"TRIAS_CONFIG"},
}

// Setup loads the configuration for the app and registers its transforms, it is meant to
// run as the Before hook of the cli app
func Setup(c *cli.Context) error {
	config, err := Load(c.String(Flag.Name))
	if err != nil {
		return err
	}

	transforms.SetupClient(config.Transforms...)

	if c.App.Metadata == nil {
		c.App.Metadata = map[string]interface{}{}
	}
	c.App.Metadata[metadataKey] = config

	return nil
}

// FromContext returns the configuration loaded by Setup, or the defaults when Setup did not
// run
func FromContext(c *cli.Context) *Config {
	if c.App != nil {
		if config, ok := c.App.Metadata[metadataKey].(*Config); ok {
			return config
		}
	}

	return Default()
}
