package calc

import (
	"fmt"
	"sort"
	"strings"
	"text/template"

	"github.com/ANIKETSHETTY47/industrial-automation-toolkit/internal/numfmt"
)

// SnippetParams are the constants a code template may reference.
type SnippetParams struct {
	RawMin  string
	RawMax  string
	EngMin  string
	EngMax  string
	RawSpan string
	EngSpan string
}

// NewSnippetParams formats the resolved scaling constants for substitution.
func NewSnippetParams(s Scaling) SnippetParams {
	f := func(v float64) string { return numfmt.Quantity(v, 4, numfmt.TrimWhole) }
	return SnippetParams{
		RawMin:  f(s.Raw.Min),
		RawMax:  f(s.Raw.Max),
		EngMin:  f(s.Eng.Min),
		EngMax:  f(s.Eng.Max),
		RawSpan: f(s.Raw.Span()),
		EngSpan: f(s.Eng.Span()),
	}
}

// BuiltinSnippets are the templates offered next to the scaler.
var BuiltinSnippets = map[string]string{
	"structured_text": `(* IEC 61131-3 Structured Text *)
EngValue := (INT_TO_REAL(RawValue) - {{.RawMin}}) * {{.EngSpan}} / {{.RawSpan}} + {{.EngMin}};
`,
	"scl": `// Siemens SCL
#norm := NORM_X(MIN := {{.RawMin}}, VALUE := #raw, MAX := {{.RawMax}});
#eng := SCALE_X(MIN := {{.EngMin}}, VALUE := #norm, MAX := {{.EngMax}});
`,
	"c": `/* C */
float scale(float raw) {
    return (raw - (float){{.RawMin}}) * (float){{.EngSpan}} / (float){{.RawSpan}} + (float){{.EngMin}};
}
`,
	"python": `# Python
def scale(raw):
    return (raw - {{.RawMin}}) * {{.EngSpan}} / {{.RawSpan}} + {{.EngMin}}
`,
}

// SnippetNames lists the builtin templates in a stable order.
func SnippetNames() []string {
	names := make([]string, 0, len(BuiltinSnippets))
	for n := range BuiltinSnippets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// RenderSnippet substitutes the scaling constants into tmpl.
func RenderSnippet(tmpl string, s Scaling) (string, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}
	t, err := template.New("snippet").Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("parse snippet template: %w", err)
	}
	var b strings.Builder
	if err := t.Execute(&b, NewSnippetParams(s)); err != nil {
		return "", fmt.Errorf("render snippet template: %w", err)
	}
	return b.String(), nil
}

// RenderBuiltinSnippets renders every builtin template.
func RenderBuiltinSnippets(s Scaling) (map[string]string, error) {
	out := make(map[string]string, len(BuiltinSnippets))
	for _, name := range SnippetNames() {
		text, err := RenderSnippet(BuiltinSnippets[name], s)
		if err != nil {
			return nil, fmt.Errorf("snippet %s: %w", name, err)
		}
		out[name] = text
	}
	return out, nil
}
