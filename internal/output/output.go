package output

import (
	"io"

	"github.com/PrismLauncher/installer/internal/locale"
	"github.com/PrismLauncher/installer/internal/logging"
)

type Format string

// FormatName constants are tokens representing supported output formats.
const (
	PlainFormatName Format = "plain" // human readable
	JSONFormatName  Format = "json"  // plain json
	YAMLFormatName  Format = "yaml"  // yaml, handy for diffing install plans
)

// Outputer is the initialized formatter
type Outputer interface {
	Print(value interface{})
	Error(value interface{})
	Notice(value interface{})
	Type() Format
	Config() *Config
}

// New constructs a new Outputer according to the given format name
func New(formatName string, config *Config) (Outputer, error) {
	logging.Debug("Requested outputer for %s", formatName)

	switch Format(formatName) {
	case "", PlainFormatName:
		plain := NewPlain(config)
		return &Mediator{&plain, PlainFormatName}, nil
	case JSONFormatName:
		json := NewJSON(config)
		return &Mediator{&json, JSONFormatName}, nil
	case YAMLFormatName:
		yml := NewYAML(config)
		return &Mediator{&yml, YAMLFormatName}, nil
	}

	return nil, locale.NewInputError("err_unknown_format", "Unknown output format '{{.V0}}', expected plain, json or yaml", formatName)
}

// Config is the thing we pass to Outputer constructors
type Config struct {
	OutWriter io.Writer
	ErrWriter io.Writer
	Colored   bool
}
