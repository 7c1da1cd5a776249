package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/PrismLauncher/installer/internal/locale"
)

// Plain writes human readable output, values are expected to have been rendered to text by their Marshaller
type Plain struct {
	cfg *Config
}

func NewPlain(config *Config) Plain {
	return Plain{config}
}

func (f *Plain) Print(value interface{}) {
	f.write(f.cfg.OutWriter, sprint(value))
}

func (f *Plain) Error(value interface{}) {
	f.write(f.cfg.ErrWriter, fmt.Sprintf("[RED]%s[/RESET]", sprint(value)))
}

func (f *Plain) Notice(value interface{}) {
	f.write(f.cfg.ErrWriter, sprint(value))
}

func (f *Plain) Type() Format {
	return PlainFormatName
}

func (f *Plain) Config() *Config {
	return f.cfg
}

func (f *Plain) write(writer io.Writer, value string) {
	if !strings.HasSuffix(value, "\n") {
		value += "\n"
	}
	writeColorized(value, writer, !f.cfg.Colored)
}

func sprint(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case error:
		return locale.JoinedErrorMessage(v)
	case []string:
		var lines []string
		for _, s := range v {
			lines = append(lines, " - "+s)
		}
		return strings.Join(lines, "\n")
	case fmt.Stringer:
		return v.String()
	case float32, float64:
		return fmt.Sprintf("%.2f", v)
	}
	return fmt.Sprintf("%v", value)
}
