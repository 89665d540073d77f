package cohere

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/skosovsky/promptwire"
	"github.com/skosovsky/promptwire/formatter"
)

const commandRMaxTokens = 20000

// defaultStopSequences halts generation before the model invents the next
// user turn of the flattened transcript.
var defaultStopSequences = []string{"User:"}

// roleTokens is the conversion table from canonical roles to Cohere's
// transcript tokens. System folds into USER.
var roleTokens = map[promptwire.Role]string{
	promptwire.RoleUser:      "USER",
	promptwire.RoleSystem:    "USER",
	promptwire.RoleAssistant: "CHATBOT",
}

type config struct {
	model    string
	settings formatter.Settings
	tempFn   formatter.TemperatureFunc
}

// Option configures a Command or CommandR formatter.
type Option func(*config)

// WithModel sets the model identifier the caller uses to pick the Bedrock
// endpoint. Not part of the request body.
func WithModel(m string) Option {
	return func(c *config) { c.model = m }
}

// WithSettings extracts recognized settings keys from cfg. Settings are
// read-only after construction.
func WithSettings(cfg map[string]any) Option {
	return func(c *config) { c.settings = formatter.ExtractSettings(cfg) }
}

// WithTemperatureFunc pins the default-temperature sampler used when
// settings carry no temperature.
func WithTemperatureFunc(fn formatter.TemperatureFunc) Option {
	return func(c *config) { c.tempFn = fn }
}

// Turn is one flattened transcript entry after role conversion.
type Turn struct {
	Role    string `json:"role"`
	Message string `json:"message"`
}

// ConvertMessages applies the role-token conversion table and the
// "## Instructions" prefix for system content. Fails with
// formatter.ErrUnsupportedRole on roles outside the table.
func ConvertMessages(msgs []promptwire.Message) ([]Turn, error) {
	out := make([]Turn, 0, len(msgs))
	for _, m := range msgs {
		token, ok := roleTokens[m.Role]
		if !ok {
			return nil, fmt.Errorf("%w: %q", formatter.ErrUnsupportedRole, m.Role)
		}
		content := m.Content
		if m.Role == promptwire.RoleSystem {
			content = "## Instructions\n" + content
		}
		out = append(out, Turn{Role: token, Message: content})
	}
	return out, nil
}

func joinPrompt(turns []Turn) string {
	lines := make([]string, 0, len(turns))
	for _, t := range turns {
		lines = append(lines, t.Role+": "+t.Message)
	}
	return strings.Join(lines, "\n")
}

func (c *config) stopSequences() []string {
	if len(c.settings.StopSequences) > 0 {
		return c.settings.StopSequences
	}
	return defaultStopSequences
}

// Command implements formatter.Formatter for Cohere Command.
type Command struct {
	config
}

// NewCommand returns a Command formatter with default model
// "cohere.command-text-v14".
func NewCommand(opts ...Option) *Command {
	f := &Command{config: config{model: "cohere.command-text-v14"}}
	for _, opt := range opts {
		opt(&f.config)
	}
	return f
}

// Name returns "cohere-command".
func (f *Command) Name() string { return "cohere-command" }

// Model returns the configured model identifier.
func (f *Command) Model() string { return f.model }

// Capabilities reports system-role support; the role conversion table
// handles the demotion to USER at serialization time instead.
func (f *Command) Capabilities() formatter.Capabilities {
	return formatter.Capabilities{SystemRoleSupported: true}
}

type commandBody struct {
	Prompt        string   `json:"prompt"`
	StopSequences []string `json:"stop_sequences"`
	Temperature   float64  `json:"temperature"`
}

// BuildBody runs the shared pipeline and serializes the Command body.
func (f *Command) BuildBody(msgs []promptwire.Message, rt promptwire.ReturnType) ([]byte, error) {
	prepared, err := formatter.BuildMessages(msgs, rt, f.Capabilities())
	if err != nil {
		return nil, err
	}
	return f.FormatBody(prepared)
}

// FormatBody serializes an already normalized message list.
func (f *Command) FormatBody(msgs []promptwire.Message) ([]byte, error) {
	turns, err := ConvertMessages(msgs)
	if err != nil {
		return nil, err
	}
	return json.Marshal(commandBody{
		Prompt:        joinPrompt(turns),
		StopSequences: f.stopSequences(),
		Temperature:   formatter.ResolveTemperature(f.settings, f.tempFn),
	})
}

// CommandR implements formatter.Formatter for Cohere Command R. The whole
// transcript flattens into the single message field; no chat_history is
// emitted.
type CommandR struct {
	config
}

// NewCommandR returns a CommandR formatter with default model
// "cohere.command-r-plus-v1:0".
func NewCommandR(opts ...Option) *CommandR {
	f := &CommandR{config: config{model: "cohere.command-r-plus-v1:0"}}
	for _, opt := range opts {
		opt(&f.config)
	}
	return f
}

// Name returns "cohere-command-r".
func (f *CommandR) Name() string { return "cohere-command-r" }

// Model returns the configured model identifier.
func (f *CommandR) Model() string { return f.model }

// Capabilities reports system-role support, as for Command.
func (f *CommandR) Capabilities() formatter.Capabilities {
	return formatter.Capabilities{SystemRoleSupported: true}
}

type commandRBody struct {
	Message       string   `json:"message"`
	MaxTokens     int64    `json:"max_tokens"`
	StopSequences []string `json:"stop_sequences"`
	Temperature   float64  `json:"temperature"`
}

// BuildBody runs the shared pipeline and serializes the Command R body.
func (f *CommandR) BuildBody(msgs []promptwire.Message, rt promptwire.ReturnType) ([]byte, error) {
	prepared, err := formatter.BuildMessages(msgs, rt, f.Capabilities())
	if err != nil {
		return nil, err
	}
	return f.FormatBody(prepared)
}

// FormatBody serializes an already normalized message list.
func (f *CommandR) FormatBody(msgs []promptwire.Message) ([]byte, error) {
	turns, err := ConvertMessages(msgs)
	if err != nil {
		return nil, err
	}
	return json.Marshal(commandRBody{
		Message:       joinPrompt(turns),
		MaxTokens:     commandRMaxTokens,
		StopSequences: f.stopSequences(),
		Temperature:   formatter.ResolveTemperature(f.settings, f.tempFn),
	})
}

var (
	_ formatter.Formatter = (*Command)(nil)
	_ formatter.Formatter = (*CommandR)(nil)
)
