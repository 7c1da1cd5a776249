package output

import (
	"encoding/json"

	"github.com/PrismLauncher/installer/internal/locale"
	"github.com/PrismLauncher/installer/internal/logging"
)

// JSON writes every value as a single line of JSON
type JSON struct {
	cfg *Config
}

func NewJSON(config *Config) JSON {
	return JSON{config}
}

func (f *JSON) Print(value interface{}) {
	f.cfg.OutWriter.Write(f.marshal(value))
	f.cfg.OutWriter.Write([]byte("\n"))
}

func (f *JSON) Error(value interface{}) {
	errStruct := struct {
		Error interface{} `json:"error"`
	}{value}
	if err, ok := value.(error); ok {
		errStruct.Error = locale.JoinedErrorMessage(err)
	}
	f.cfg.ErrWriter.Write(f.marshal(errStruct))
	f.cfg.ErrWriter.Write([]byte("\n"))
}

// Notice is dropped, so the output stays parseable
func (f *JSON) Notice(value interface{}) {
	logging.Debug("Dropping notice in json output: %v", value)
}

func (f *JSON) Type() Format {
	return JSONFormatName
}

func (f *JSON) Config() *Config {
	return f.cfg
}

func (f *JSON) marshal(value interface{}) []byte {
	if err, ok := value.(error); ok {
		value = locale.JoinedErrorMessage(err)
	}
	b, err := json.Marshal(value)
	if err != nil {
		logging.Error("Could not marshal value, error: %v", err)
		b, _ = json.Marshal(locale.Tl("err_could_not_marshal_print", "Could not marshal output value"))
	}
	return b
}
