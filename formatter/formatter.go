package formatter

import (
	"errors"
	"math/rand/v2"

	"github.com/skosovsky/promptwire"
)

// Sentinel errors for formatter implementations. Callers should use errors.Is.
var (
	ErrUnsupportedRole = errors.New("formatter: unsupported message role for this provider")
)

// Capabilities describes the wire-protocol constraints of a provider
// variant. They drive the shared pipeline's normalization branching.
type Capabilities struct {
	// SystemRoleSupported reports whether the wire format accepts system
	// messages; when false, normalization demotes them to user.
	SystemRoleSupported bool
	// SpecialTokens reports whether the variant wraps content in
	// model-specific control tokens after normalization.
	SpecialTokens bool
}

// Formatter produces a serialized provider request body from a message
// list and a return-type descriptor. Model name and settings are fixed at
// construction; implementations must be safe for concurrent use.
type Formatter interface {
	// Name returns the provider identifier (e.g. "llama", "claude").
	Name() string

	// Capabilities returns the variant's wire-protocol constraints.
	Capabilities() Capabilities

	// BuildBody runs the shared pipeline (scaffold insertion, normalization)
	// and serializes the result into the provider wire shape.
	BuildBody(msgs []promptwire.Message, rt promptwire.ReturnType) ([]byte, error)
}

// BuildMessages runs the pipeline shared by every variant: render the
// scaffold for rt, prepend the system-instruction message, append the
// assistant priming hint (skipped when empty so plain-type prompts carry
// no trailing assistant turn), then normalize per caps. The caller slice
// is not mutated.
func BuildMessages(msgs []promptwire.Message, rt promptwire.ReturnType, caps Capabilities) ([]promptwire.Message, error) {
	sc, err := promptwire.RenderScaffold(rt)
	if err != nil {
		return nil, err
	}
	out := make([]promptwire.Message, 0, len(msgs)+2)
	out = append(out, promptwire.Message{Role: promptwire.RoleSystem, Content: sc.Instructions})
	out = append(out, msgs...)
	if sc.Hint != "" {
		out = append(out, promptwire.Message{Role: promptwire.RoleAssistant, Content: sc.Hint})
	}
	return promptwire.Normalize(out, caps.SystemRoleSupported), nil
}

// TemperatureFunc samples a default temperature in [0, 1) when settings
// carry none. Variants accept one via their WithTemperatureFunc option so
// tests and reproducibility-minded callers can pin it.
type TemperatureFunc func() float64

// ResolveTemperature returns the configured temperature, or a fresh sample
// from fn (rand.Float64 when fn is nil).
func ResolveTemperature(s Settings, fn TemperatureFunc) float64 {
	if s.Temperature != nil {
		return *s.Temperature
	}
	if fn == nil {
		return rand.Float64()
	}
	return fn()
}
