package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/travigo/trias/pkg/transforms"
	"github.com/travigo/trias/pkg/trias"
	"github.com/travigo/trias/pkg/util"
	"gopkg.in/yaml.v3"
)

const (
	DefaultStop                = "de:08111:6008"
	DefaultStopName            = "Universität"
	DefaultStatisticsDirectory = "statistics"
	DefaultListen              = ":5001"
)

type Config struct {
	Endpoint     string        `yaml:"endpoint"`
	RequestorRef string        `yaml:"requestor_ref"`
	Timeout      time.Duration `yaml:"timeout"`

	Stop     string `yaml:"stop"`
	StopName string `yaml:"stop_name"`

	StatisticsDirectory string `yaml:"statistics_dir"`
	Listen              string `yaml:"listen"`

	Transforms []*transforms.TransformDefinition `yaml:"transforms"`
}

func Default() *Config {
	return &Config{
		Endpoint:            trias.DefaultEndpoint,
		RequestorRef:        trias.DefaultRequestorRef,
		Timeout:             trias.DefaultTimeout,
		Stop:                DefaultStop,
		StopName:            DefaultStopName,
		StatisticsDirectory: DefaultStatisticsDirectory,
		Listen:              DefaultListen,
	}
}

// Load builds the configuration from the defaults, then the YAML file at path if one is
// given, then the TRIAS_* environment variables
func Load(path string) (*Config, error) {
	config := Default()

	if path != "" {
		configYaml, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}

		decoder := yaml.NewDecoder(bytes.NewReader(configYaml))
		if err := decoder.Decode(config); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decoding config file %s: %w", path, err)
		}

		log.Debug().Str("path", path).Int("transforms", len(config.Transforms)).Msg("Loaded config file")
	}

	if err := config.applyEnvironment(util.GetEnvironmentVariables()); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) applyEnvironment(env map[string]string) error {
	c.Endpoint = util.GetEnvironmentVariable(env, "TRIAS_ENDPOINT", c.Endpoint)
	c.RequestorRef = util.GetEnvironmentVariable(env, "TRIAS_REQUESTOR_REF", c.RequestorRef)
	c.Stop = util.GetEnvironmentVariable(env, "TRIAS_STOP", c.Stop)
	c.StopName = util.GetEnvironmentVariable(env, "TRIAS_STOP_NAME", c.StopName)
	c.StatisticsDirectory = util.GetEnvironmentVariable(env, "TRIAS_STATISTICS_DIR", c.StatisticsDirectory)
	c.Listen = util.GetEnvironmentVariable(env, "TRIAS_LISTEN", c.Listen)

	if timeout := util.GetEnvironmentVariable(env, "TRIAS_TIMEOUT", ""); timeout != "" {
		parsed, err := time.ParseDuration(timeout)
		if err != nil {
			return fmt.Errorf("invalid TRIAS_TIMEOUT %q: %w", timeout, err)
		}

		c.Timeout = parsed
	}

	return nil
}

func (c *Config) NewClient() *trias.Client {
	return trias.NewClient(
		trias.NewHTTPTransport(c.Endpoint, c.Timeout),
		trias.NewRequestBuilder(c.RequestorRef),
	)
}
