package term

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTemplate_JSONPayload(t *testing.T) {
	tpl, err := ParseTemplate(`{{ range .JSON }}{{ .Key | upper }};{{ end }}`)
	require.NoError(t, err)

	var out bytes.Buffer
	err = RenderTemplate(&out, tpl, []byte(`[{"Key":"asset1"},{"Key":"asset2"}]`))
	require.NoError(t, err)

	assert.Equal(t, "ASSET1;ASSET2;", out.String())
}

func TestRenderTemplate_RawPayload(t *testing.T) {
	tpl, err := ParseTemplate(`{{ .Raw | trim }}|{{ if .JSON }}json{{ else }}text{{ end }}`)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, RenderTemplate(&out, tpl, []byte("  not json  ")))

	assert.Equal(t, "not json|text", out.String())
}

func TestParseTemplate_Invalid(t *testing.T) {
	_, err := ParseTemplate(`{{ .Raw `)
	assert.Error(t, err)
}
