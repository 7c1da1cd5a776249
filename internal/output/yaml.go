package output

import (
	"gopkg.in/yaml.v3"

	"github.com/PrismLauncher/installer/internal/locale"
	"github.com/PrismLauncher/installer/internal/logging"
)

// YAML writes every value as a yaml document
type YAML struct {
	cfg *Config
}

func NewYAML(config *Config) YAML {
	return YAML{config}
}

func (f *YAML) Print(value interface{}) {
	f.cfg.OutWriter.Write(f.marshal(value))
}

func (f *YAML) Error(value interface{}) {
	if err, ok := value.(error); ok {
		value = locale.JoinedErrorMessage(err)
	}
	f.cfg.ErrWriter.Write(f.marshal(map[string]interface{}{"error": value}))
}

// Notice is dropped, so the output stays parseable
func (f *YAML) Notice(value interface{}) {
	logging.Debug("Dropping notice in yaml output: %v", value)
}

func (f *YAML) Type() Format {
	return YAMLFormatName
}

func (f *YAML) Config() *Config {
	return f.cfg
}

func (f *YAML) marshal(value interface{}) []byte {
	if err, ok := value.(error); ok {
		value = locale.JoinedErrorMessage(err)
	}
	b, err := yaml.Marshal(value)
	if err != nil {
		logging.Error("Could not marshal value, error: %v", err)
		b, _ = yaml.Marshal(locale.Tl("err_could_not_marshal_print", "Could not marshal output value"))
	}
	return b
}
