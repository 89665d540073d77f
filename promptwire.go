package promptwire

// Role is the message role in a chat (system, user, assistant).
type Role string

// Chat message roles.
const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single chat message. Plain value; formatting passes return
// new slices and never mutate caller-owned messages.
type Message struct {
	Role    Role
	Content string
}

// ReturnType is a sealed interface describing the desired output shape.
// Only package types implement it via isReturnType().
type ReturnType interface {
	isReturnType()
}

// SchemaReturn requests structured output matching a JSON Schema.
// The schema is serialized and embedded verbatim in the scaffold.
type SchemaReturn struct {
	Schema map[string]any
}

func (SchemaReturn) isReturnType() {}

// TypeReturn requests free-form output of a named type (e.g. "text", "yaml").
type TypeReturn struct {
	Name string
}

func (TypeReturn) isReturnType() {}

// TypeName returns the name used in scaffold wording: "json" for schema
// mode, the declared name otherwise.
func TypeName(rt ReturnType) string {
	if t, ok := rt.(TypeReturn); ok {
		return t.Name
	}
	return "json"
}
