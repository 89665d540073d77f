package claude

import (
	"encoding/json"
	"fmt"

	"github.com/skosovsky/promptwire"
	"github.com/skosovsky/promptwire/formatter"
)

const (
	providerName            = "claude"
	defaultMaxTokens        = 8000
	defaultAnthropicVersion = "bedrock-2023-05-31"
)

// Formatter implements formatter.Formatter for Claude on Bedrock.
type Formatter struct {
	model    string
	settings formatter.Settings
	tempFn   formatter.TemperatureFunc
}

// Option configures a Formatter (e.g. WithModel).
type Option func(*Formatter)

// WithModel sets the model identifier the caller uses to pick the Bedrock
// endpoint. Not part of the request body.
func WithModel(m string) Option {
	return func(f *Formatter) { f.model = m }
}

// WithSettings extracts recognized settings keys from cfg. Settings are
// read-only after construction.
func WithSettings(cfg map[string]any) Option {
	return func(f *Formatter) { f.settings = formatter.ExtractSettings(cfg) }
}

// WithTemperatureFunc pins the default-temperature sampler used when
// settings carry no temperature.
func WithTemperatureFunc(fn formatter.TemperatureFunc) Option {
	return func(f *Formatter) { f.tempFn = fn }
}

// New returns a Formatter with default model
// "anthropic.claude-3-5-sonnet-20240620-v1:0".
func New(opts ...Option) *Formatter {
	f := &Formatter{model: "anthropic.claude-3-5-sonnet-20240620-v1:0"}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Name returns "claude".
func (f *Formatter) Name() string { return providerName }

// Model returns the configured model identifier.
func (f *Formatter) Model() string { return f.model }

// Capabilities reports system-role support; the system message stays a
// separate top-level field rather than a transcript turn.
func (f *Formatter) Capabilities() formatter.Capabilities {
	return formatter.Capabilities{SystemRoleSupported: true}
}

type wireMessage struct {
	Role    promptwire.Role `json:"role"`
	Content string          `json:"content"`
}

type body struct {
	System           string        `json:"system"`
	MaxTokens        int64         `json:"max_tokens"`
	Messages         []wireMessage `json:"messages"`
	Temperature      float64       `json:"temperature"`
	AnthropicVersion string        `json:"anthropic_version"`
}

// BuildBody runs the shared pipeline and serializes the Messages API body.
func (f *Formatter) BuildBody(msgs []promptwire.Message, rt promptwire.ReturnType) ([]byte, error) {
	prepared, err := formatter.BuildMessages(msgs, rt, f.Capabilities())
	if err != nil {
		return nil, err
	}
	return f.FormatBody(prepared)
}

// FormatBody serializes an already normalized message list. The first
// message must be the system message to promote; an empty list fails with
// promptwire.ErrMalformedInput.
func (f *Formatter) FormatBody(msgs []promptwire.Message) ([]byte, error) {
	if len(msgs) == 0 {
		return nil, fmt.Errorf("%w: no leading system message to promote", promptwire.ErrMalformedInput)
	}
	system := msgs[0]
	rest := msgs[1:]
	wire := make([]wireMessage, 0, len(rest))
	for _, m := range rest {
		wire = append(wire, wireMessage{Role: m.Role, Content: m.Content})
	}
	maxTokens := int64(defaultMaxTokens)
	if f.settings.MaxTokens != nil {
		maxTokens = *f.settings.MaxTokens
	}
	version := f.settings.AnthropicVersion
	if version == "" {
		version = defaultAnthropicVersion
	}
	return json.Marshal(body{
		System:           system.Content,
		MaxTokens:        maxTokens,
		Messages:         wire,
		Temperature:      formatter.ResolveTemperature(f.settings, f.tempFn),
		AnthropicVersion: version,
	})
}

var _ formatter.Formatter = (*Formatter)(nil)
