package output

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/PrismLauncher/installer/internal/locale"
)

func TestJSON_Print(t *testing.T) {
	tests := []struct {
		name        string
		value       interface{}
		expectedOut string
	}{
		{"simple string", "hello", "\"hello\"\n"},
		{"error string", errors.New("hello"), "\"hello\"\n"},
		{
			"struct",
			struct {
				Field1 string `json:"field1"`
				Field2 int    `json:"field2"`
			}{"value", 2},
			"{\"field1\":\"value\",\"field2\":2}\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outWriter := &bytes.Buffer{}
			f := NewJSON(&Config{OutWriter: outWriter, ErrWriter: &bytes.Buffer{}})
			f.Print(tt.value)
			assert.Equal(t, tt.expectedOut, outWriter.String())
		})
	}
}

func TestJSON_Error(t *testing.T) {
	errWriter := &bytes.Buffer{}
	f := NewJSON(&Config{OutWriter: &bytes.Buffer{}, ErrWriter: errWriter})
	f.Error(locale.NewError("", "Localized"))
	f.Notice("dropped")
	assert.Equal(t, "{\"error\":\"Localized\"}\n", errWriter.String())
}

func TestYAML_Error(t *testing.T) {
	errWriter := &bytes.Buffer{}
	f := NewYAML(&Config{OutWriter: &bytes.Buffer{}, ErrWriter: errWriter})
	f.Error(locale.NewError("", "Localized"))
	assert.Equal(t, "error: Localized\n", errWriter.String())
}
