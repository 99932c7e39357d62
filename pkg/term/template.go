package term

import (
	"encoding/json"
	"io"
	"text/template"

	"github.com/Masterminds/sprig"
	"github.com/pkg/errors"
)

// TemplateValues is the data passed to result templates.
type TemplateValues struct {
	// Raw is the result payload as text.
	Raw string
	// JSON holds the decoded payload, or nil when it isn't valid JSON.
	JSON interface{}
}

// ParseTemplate parses result template `text` with sprig functions available.
func ParseTemplate(text string) (*template.Template, error) {
	tpl, err := template.New("result").Funcs(sprig.TxtFuncMap()).Parse(text)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse result template")
	}

	return tpl, nil
}

// RenderTemplate renders `payload` with `tpl` into `w`.
func RenderTemplate(w io.Writer, tpl *template.Template, payload []byte) error {
	var values = TemplateValues{
		Raw: string(payload),
	}

	if err := json.Unmarshal(payload, &values.JSON); err != nil {
		values.JSON = nil
	}

	if err := tpl.Execute(w, values); err != nil {
		return errors.Wrap(err, "failed to render result template")
	}

	return nil
}
