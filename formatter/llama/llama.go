package llama

import (
	"encoding/json"
	"strings"

	"github.com/skosovsky/promptwire"
	"github.com/skosovsky/promptwire/formatter"
)

const (
	providerName     = "llama"
	defaultMaxGenLen = 2048
)

// Formatter implements formatter.Formatter for Llama-family models.
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

// New returns a Formatter with default model "meta.llama3-70b-instruct-v1:0".
func New(opts ...Option) *Formatter {
	f := &Formatter{model: "meta.llama3-70b-instruct-v1:0"}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Name returns "llama".
func (f *Formatter) Name() string { return providerName }

// Model returns the configured model identifier.
func (f *Formatter) Model() string { return f.model }

// Capabilities reports system-role support and special-token wrapping.
func (f *Formatter) Capabilities() formatter.Capabilities {
	return formatter.Capabilities{SystemRoleSupported: true, SpecialTokens: true}
}

type body struct {
	MaxGenLen   int64   `json:"max_gen_len"`
	Prompt      string  `json:"prompt"`
	Temperature float64 `json:"temperature"`
}

// BuildBody runs the shared pipeline and serializes the Llama text
// completion body.
func (f *Formatter) BuildBody(msgs []promptwire.Message, rt promptwire.ReturnType) ([]byte, error) {
	prepared, err := formatter.BuildMessages(msgs, rt, f.Capabilities())
	if err != nil {
		return nil, err
	}
	return f.FormatBody(prepared)
}

// FormatBody serializes an already normalized message list: contents are
// token-wrapped per role and joined with newlines into a single prompt.
func (f *Formatter) FormatBody(msgs []promptwire.Message) ([]byte, error) {
	contents := make([]string, 0, len(msgs))
	for _, m := range msgs {
		contents = append(contents, wrapSpecialTokens(m))
	}
	maxGenLen := int64(defaultMaxGenLen)
	if f.settings.MaxGenLen != nil {
		maxGenLen = *f.settings.MaxGenLen
	}
	return json.Marshal(body{
		MaxGenLen:   maxGenLen,
		Prompt:      strings.Join(contents, "\n"),
		Temperature: formatter.ResolveTemperature(f.settings, f.tempFn),
	})
}

func wrapSpecialTokens(m promptwire.Message) string {
	switch m.Role {
	case promptwire.RoleSystem:
		return "<<SYS>> " + m.Content + " <</SYS>>"
	case promptwire.RoleUser:
		return "[INST] " + m.Content + " [/INST]"
	default:
		return m.Content
	}
}

var _ formatter.Formatter = (*Formatter)(nil)
