package promptwire

import (
	"bytes"
	"encoding/json"
	"fmt"
	"text/template"
)

// Scaffold holds the two texts injected around a caller-supplied message
// list: system instructions at the front, an assistant priming hint at the
// end. The hint is empty in plain-type mode.
type Scaffold struct {
	Instructions string
	Hint         string
}

const instructionsText = `Act like a REST API that performs the requested operation the user asked according to guidelines provided.
{{if .Schema}}Your response should be a valid JSON format, strictly adhering to the JSON Schema provided in the json_schema section.
Respond in a structured JSON format according to the provided schema.

` + "```json_schema\n{{.Schema}}\n```" + `
{{else}}Your response should be a valid {{.TypeName}} only
{{end}}Stick to the facts and details in the provided data, and follow the guidelines closely.
DO NOT add any other text other than the {{.TypeName}} response`

const hintText = "{{if .Schema}}```{{.TypeName}}{{end}}"

// Templates are parsed once; Parse only fails on malformed template text,
// which is a programming error here.
var (
	instructionsTpl = template.Must(template.New("instructions").Parse(instructionsText))
	hintTpl         = template.Must(template.New("hint").Parse(hintText))
)

type scaffoldData struct {
	Schema   string
	TypeName string
}

// RenderScaffold renders the system-instruction and assistant-hint texts
// for the given return type. Pure: same input, same output. Returns an
// error wrapping ErrRender when the schema cannot be serialized.
func RenderScaffold(rt ReturnType) (Scaffold, error) {
	data := scaffoldData{TypeName: TypeName(rt)}
	if s, ok := rt.(SchemaReturn); ok {
		b, err := json.MarshalIndent(s.Schema, "", "    ")
		if err != nil {
			return Scaffold{}, fmt.Errorf("%w: serialize schema: %w", ErrRender, err)
		}
		data.Schema = string(b)
	}
	var instructions bytes.Buffer
	if err := instructionsTpl.Execute(&instructions, data); err != nil {
		return Scaffold{}, fmt.Errorf("%w: %w", ErrRender, err)
	}
	var hint bytes.Buffer
	if err := hintTpl.Execute(&hint, data); err != nil {
		return Scaffold{}, fmt.Errorf("%w: %w", ErrRender, err)
	}
	return Scaffold{
		Instructions: instructions.String(),
		Hint:         hint.String(),
	}, nil
}
