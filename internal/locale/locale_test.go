package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestT(t *testing.T) {
	translation := T("prism_installer_description")
	assert.NotEqual(t, "prism_installer_description", translation)
	assert.NotEmpty(t, translation)

	assert.Equal(t, "missing_id", T("missing_id"), "missing ids are returned as is")
}

func TestTr(t *testing.T) {
	assert.Equal(t,
		"Install directory: a\nElevated install directory: b",
		Tr("targetdir_resolved", "a", "b"))
}

func TestTl(t *testing.T) {
	assert.Equal(t, "Hello World", Tl("missing_id", "Hello {{.V0}}", "World"))
	assert.Equal(t, "Unknown policy 'x', expected 'skip' or 'fail'", Tl("err_unknown_policy", "fallback", "x"))
	assert.Equal(t, "broken {{", Tl("missing_id", "broken {{"), "unparseable fallbacks are returned verbatim")
}

func TestSet(t *testing.T) {
	assert.NoError(t, Set("en-US"))

	err := Set("zz-ZZ")
	assert.Error(t, err)
	assert.True(t, IsInputError(err))
	assert.NotEqual(t, "err_unsupported_locale", T("err_unsupported_locale"), "previous locale stays active")
}
