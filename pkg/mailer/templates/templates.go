package templates

import (
	"bytes"
	"embed"
	htmpl "html/template"
)

//go:embed *.tmpl
var FS embed.FS

// Welcome is the account-creation mail.
const Welcome = "welcome"

// WelcomeData feeds the welcome template.
type WelcomeData struct {
	FirstName string
	AppName   string
}

var parsed = htmpl.Must(htmpl.ParseFS(FS, "*.tmpl"))

// RenderHTML renders the named template (without the .html.tmpl suffix) to a
// string.
func RenderHTML(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := parsed.ExecuteTemplate(&buf, name+".html.tmpl", data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
