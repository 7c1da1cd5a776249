package output

import (
	"io"
	"regexp"

	"github.com/fatih/color"
)

var colorRx = regexp.MustCompile(`\[(BOLD|UNDERLINE|RED|GREEN|YELLOW|BLUE|MAGENTA|CYAN|WHITE|/RESET)\]`)

var colorAttributes = map[string]color.Attribute{
	"BOLD":      color.Bold,
	"UNDERLINE": color.Underline,
	"RED":       color.FgRed,
	"GREEN":     color.FgGreen,
	"YELLOW":    color.FgYellow,
	"BLUE":      color.FgBlue,
	"MAGENTA":   color.FgMagenta,
	"CYAN":      color.FgCyan,
	"WHITE":     color.FgWhite,
}

// writeColorized will replace `[COLORNAME]foo[/RESET]` with shell colors, or strip color tags if stripColors=true
func writeColorized(value string, writer io.Writer, stripColors bool) (int, error) {
	var written int
	var current []color.Attribute

	write := func(s string) error {
		if s == "" {
			return nil
		}
		var n int
		var err error
		if stripColors || len(current) == 0 {
			n, err = io.WriteString(writer, s)
		} else {
			c := color.New(current...)
			c.EnableColor()
			n, err = c.Fprint(writer, s)
		}
		written += n
		return err
	}

	pos := 0
	for _, match := range colorRx.FindAllStringSubmatchIndex(value, -1) {
		if err := write(value[pos:match[0]]); err != nil {
			return written, err
		}
		name := value[match[2]:match[3]]
		if name == "/RESET" {
			current = nil
		} else {
			current = append(current, colorAttributes[name])
		}
		pos = match[1]
	}

	return written, write(value[pos:])
}

// StripColorCodes strips color tags from a string
func StripColorCodes(value string) string {
	return colorRx.ReplaceAllString(value, "")
}
