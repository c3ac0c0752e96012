package config

import (
	_ "embed"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"sigs.k8s.io/yaml"
)

//go:embed default/config.yaml
var defaultConfigData []byte

const (
	// ConfigurationName is the file chrish looks for in the config directory.
	ConfigurationName = "config.yaml"

	// DefaultPrompt is written before each command line is read.
	DefaultPrompt = "> "
)

type Configuration struct {
	// Prompt is written to the output stream before each command line,
	// with no trailing newline.
	Prompt string `json:"prompt" validate:"required"`

	// Motd is printed once before the first prompt. Empty disables it.
	Motd string `json:"motd"`

	// HistoryFile persists command history between interactive
	// sessions. Empty disables persistence.
	HistoryFile string `json:"history_file"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

func defaultConfig() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
