package main

import (
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v2"
)

// config is read from the optional --config YAML file. Command line flags
// override it.
type config struct {
	Locations bool   `yaml:"locations"`
	Ranges    bool   `yaml:"ranges"`
	Validate  bool   `yaml:"validate"`
	MaxDepth  int    `yaml:"max_depth"`
	Indent    string `yaml:"indent"`
	LogLevel  string `yaml:"log_level"`
}

func defaultConfig() config {
	return config{
		Indent:   "  ",
		LogLevel: "info",
	}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "reading config %s", path)
	}
	if err := yaml.UnmarshalStrict(buf, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %s", path)
	}
	return cfg, nil
}

// newLogger builds a JSON logger writing to stderr; stdout carries the
// command output.
func newLogger(level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, errors.Wrapf(err, "log level %q", level)
	}

	config := zap.NewProductionEncoderConfig()
	config.EncodeTime = zapcore.RFC3339TimeEncoder
	encoder := zapcore.NewJSONEncoder(config)

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), lvl)
	return zap.New(core, zap.AddCaller()), nil
}
