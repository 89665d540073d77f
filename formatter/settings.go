package formatter

import "github.com/skosovsky/promptwire/internal/cast"

// Settings holds well-known model settings extracted from a
// map[string]any. Use ExtractSettings to populate; unrecognized keys are
// ignored and missing keys stay nil/empty so variants apply their defaults.
type Settings struct {
	MaxGenLen        *int64
	MaxTokens        *int64
	Temperature      *float64
	StopSequences    []string
	AnthropicVersion string
}

// ExtractSettings reads the recognized keys from cfg and returns typed
// Settings. Recognized keys: "max_gen_len" (int64), "max_tokens" (int64),
// "temperature" (float64), "stop_sequences" ([]string),
// "anthropic_version" (string).
func ExtractSettings(cfg map[string]any) Settings {
	var out Settings
	if cfg == nil {
		return out
	}
	if v, ok := cfg["max_gen_len"]; ok {
		if i, ok := cast.ToInt64(v); ok {
			out.MaxGenLen = &i
		}
	}
	if v, ok := cfg["max_tokens"]; ok {
		if i, ok := cast.ToInt64(v); ok {
			out.MaxTokens = &i
		}
	}
	if v, ok := cfg["temperature"]; ok {
		if f, ok := cast.ToFloat64(v); ok {
			out.Temperature = &f
		}
	}
	if v, ok := cfg["stop_sequences"]; ok {
		if ss, ok := cast.ToStringSlice(v); ok {
			out.StopSequences = ss
		}
	}
	if v, ok := cfg["anthropic_version"]; ok {
		if s, ok := v.(string); ok {
			out.AnthropicVersion = s
		}
	}
	return out
}
