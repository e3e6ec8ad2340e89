package main

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config of a measuring run. Every field can come from a flag, from an
// environment variable MEASURE_<FLAG> or from the YAML file given by --config,
// in that order of precedence.
type Config struct {
	N        int      `mapstructure:"n"`
	Steps    int      `mapstructure:"steps"`
	Seed     int64    `mapstructure:"seed"`
	Impls    []string `mapstructure:"impl"`
	Format   string   `mapstructure:"format"`
	LogLevel string   `mapstructure:"log-level"`
	Quiet    bool     `mapstructure:"quiet"`
}

func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	f := cmd.Flags()
	f.Int("n", 1<<16, "number of elements inserted by every run")
	f.Int("steps", 10, "number of removal ratios to measure, run i removes n/steps*i elements")
	f.Int64("seed", 0, "seed of the generated elements")
	f.StringSlice("impl", implNames(), "implementations to measure")
	f.String("format", "text", "report format, text or yaml")
	f.String("log-level", "info", "logrus level")
	f.Bool("quiet", false, "hide the progress bar")
	f.String("config", "", "YAML file with any of the above settings")

	v.SetEnvPrefix("measure")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(f); err != nil {
		return fmt.Errorf("failed to bind flags %s", err.Error())
	}
	return nil
}

func loadConfig(v *viper.Viper) (*Config, error) {
	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	}
	c := new(Config)
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return c, c.validate()
}

func (c *Config) validate() error {
	if c.N < 1 {
		return fmt.Errorf("n must be positive, got %d", c.N)
	}
	if c.Steps < 2 {
		return fmt.Errorf("steps must be at least 2, got %d", c.Steps)
	}
	if c.Format != "text" && c.Format != "yaml" {
		return fmt.Errorf("unknown format %q", c.Format)
	}
	if len(c.Impls) == 0 {
		return fmt.Errorf("no implementation selected")
	}
	for _, name := range c.Impls {
		if _, ok := impls[name]; !ok {
			return fmt.Errorf("unknown implementation %q, choose from %s", name, strings.Join(implNames(), ","))
		}
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}
