// Package manifest parses YAML prompt manifests: the message list, return
// type, provider id, and model settings for one formatting call, declared
// as a file instead of code.
package manifest

import (
	"fmt"
	"io/fs"
	"maps"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/skosovsky/promptwire"
)

// Prompt is a parsed manifest, ready to hand to a formatter.
type Prompt struct {
	ID          string
	Version     string
	Description string
	Provider    string
	Settings    map[string]any
	ReturnType  promptwire.ReturnType
	Messages    []promptwire.Message
}

// Clone returns a copy with cloned slice and map fields. Registries use
// this so callers cannot mutate the cached prompt.
func (p *Prompt) Clone() *Prompt {
	if p == nil {
		return nil
	}
	out := *p
	out.Messages = slices.Clone(p.Messages)
	if p.Settings != nil {
		out.Settings = maps.Clone(p.Settings)
	}
	return &out
}

// fileManifest is the YAML manifest shape bound directly to domain types.
type fileManifest struct {
	ID             string         `yaml:"id"`
	Version        string         `yaml:"version"`
	Description    string         `yaml:"description"`
	Provider       string         `yaml:"provider"`
	Settings       map[string]any `yaml:"settings"`
	ResponseFormat struct {
		Schema map[string]any `yaml:"schema"`
		Type   string         `yaml:"type"`
	} `yaml:"response_format"`
	Messages []struct {
		Role    string `yaml:"role"`
		Content string `yaml:"content"`
	} `yaml:"messages"`
}

// ParseBytes parses a YAML manifest and returns a Prompt.
func ParseBytes(data []byte) (*Prompt, error) {
	var m fileManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %w", promptwire.ErrInvalidManifest, err)
	}
	return buildPrompt(&m)
}

// ParseFile reads and parses a manifest file.
func ParseFile(path string) (*Prompt, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is validated by caller
	if err != nil {
		return nil, fmt.Errorf("manifest: read file: %w", err)
	}
	return ParseBytes(data)
}

// ParseFS reads and parses a manifest from fs.FS (e.g. embed.FS).
func ParseFS(fsys fs.FS, name string) (*Prompt, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("manifest: read fs: %w", err)
	}
	return ParseBytes(data)
}

func buildPrompt(m *fileManifest) (*Prompt, error) {
	if m.ID == "" {
		return nil, fmt.Errorf("%w: missing id", promptwire.ErrInvalidManifest)
	}
	if len(m.Messages) == 0 {
		return nil, fmt.Errorf("%w: missing messages", promptwire.ErrInvalidManifest)
	}
	validRoles := map[string]bool{
		string(promptwire.RoleSystem):    true,
		string(promptwire.RoleUser):      true,
		string(promptwire.RoleAssistant): true,
	}
	msgs := make([]promptwire.Message, 0, len(m.Messages))
	for i, msg := range m.Messages {
		if !validRoles[msg.Role] {
			return nil, fmt.Errorf("%w: message %d: invalid role %q", promptwire.ErrInvalidManifest, i, msg.Role)
		}
		msgs = append(msgs, promptwire.Message{Role: promptwire.Role(msg.Role), Content: msg.Content})
	}
	rt, err := returnType(m)
	if err != nil {
		return nil, err
	}
	return &Prompt{
		ID:          m.ID,
		Version:     m.Version,
		Description: m.Description,
		Provider:    m.Provider,
		Settings:    m.Settings,
		ReturnType:  rt,
		Messages:    msgs,
	}, nil
}

// returnType maps response_format to a ReturnType. Exactly one of schema
// and type may be set; absent response_format means free-form text.
func returnType(m *fileManifest) (promptwire.ReturnType, error) {
	hasSchema := len(m.ResponseFormat.Schema) > 0
	hasType := m.ResponseFormat.Type != ""
	switch {
	case hasSchema && hasType:
		return nil, fmt.Errorf("%w: response_format sets both schema and type", promptwire.ErrInvalidManifest)
	case hasSchema:
		return promptwire.SchemaReturn{Schema: m.ResponseFormat.Schema}, nil
	case hasType:
		return promptwire.TypeReturn{Name: m.ResponseFormat.Type}, nil
	default:
		return promptwire.TypeReturn{Name: "text"}, nil
	}
}
