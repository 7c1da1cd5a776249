package locale

import (
	"bytes"
	"embed"
	"os"
	"path"
	"strconv"
	"strings"
	"text/template"

	"github.com/nicksnyder/go-i18n/i18n"
	"github.com/thoas/go-funk"

	"github.com/PrismLauncher/installer/internal/logging"
)

//go:embed locales/*.yaml
var localeFiles embed.FS

// Supported languages
var Supported = []string{"en-US"}

// LocaleEnvVarName selects the active language
const LocaleEnvVarName = "PRISM_INSTALLER_LOCALE"

var translateFunction i18n.TranslateFunc

func init() {
	for _, l := range Supported {
		name := path.Join("locales", strings.ToLower(l)+".yaml")
		b, err := localeFiles.ReadFile(name)
		if err != nil {
			panic("Missing embedded translation file: " + name)
		}
		if err := i18n.ParseTranslationFileBytes(name, b); err != nil {
			panic("Could not parse translation file " + name + ": " + err.Error())
		}
	}

	localeName := os.Getenv(LocaleEnvVarName)
	if localeName == "" || !funk.ContainsString(Supported, localeName) {
		localeName = Supported[0]
	}
	if err := Set(localeName); err != nil {
		panic(err.Error())
	}
}

// Set the active language to the given locale
func Set(localeName string) error {
	if !funk.ContainsString(Supported, localeName) {
		return NewInputError("err_unsupported_locale", "Locale does not exist: {{.V0}}", localeName)
	}

	var err error
	translateFunction, err = i18n.Tfunc(localeName)
	if err != nil {
		return WrapError(err, "err_unsupported_locale", "Locale does not exist: {{.V0}}", localeName)
	}
	return nil
}

// T translates the given id, args are handed to the translation template as is
func T(translationID string, args ...interface{}) string {
	return translateFunction(translationID, args...)
}

// Tr is like T but takes positional string arguments, available to the template as V0, V1, etc.
func Tr(translationID string, values ...string) string {
	return T(translationID, positional(values))
}

// Tl is like Tr but renders the given fallback when the id has no translation
func Tl(translationID, fallback string, values ...string) string {
	translation := Tr(translationID, values...)
	if translation != translationID && translationID != "" {
		return translation
	}

	tpl, err := template.New("locale fallback").Parse(fallback)
	if err != nil {
		logging.Warning("Invalid locale fallback for %s: %v", translationID, err)
		return fallback
	}
	var out bytes.Buffer
	if err := tpl.Execute(&out, positional(values)); err != nil {
		logging.Warning("Could not render locale fallback for %s: %v", translationID, err)
		return fallback
	}
	return out.String()
}

func positional(values []string) map[string]interface{} {
	args := map[string]interface{}{}
	for k, v := range values {
		args["V"+strconv.Itoa(k)] = v
	}
	return args
}
