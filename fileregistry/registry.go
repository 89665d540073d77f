// Package fileregistry loads prompt manifests from a directory, lazily
// and with caching. Resolution is {dir}/{name}.yaml with fallback to
// {dir}/{name}.yml.
package fileregistry

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"

	"github.com/skosovsky/promptwire"
	"github.com/skosovsky/promptwire/manifest"
)

// Registry loads prompt manifests from the filesystem (lazy, cached).
type Registry struct {
	dir   string
	mu    sync.RWMutex
	cache map[string]*manifest.Prompt
}

// New creates a Registry that reads YAML manifests from dir.
func New(dir string) *Registry {
	return &Registry{
		dir:   dir,
		cache: make(map[string]*manifest.Prompt),
	}
}

// validateName rejects names that could escape the registry directory.
func validateName(name string) error {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return fmt.Errorf("%w: invalid name %q", promptwire.ErrPromptNotFound, name)
	}
	return nil
}

// GetPrompt returns a prompt by name. Lazy-loads and caches; returns a
// clone so callers cannot mutate the cached prompt.
func (r *Registry) GetPrompt(ctx context.Context, name string) (*manifest.Prompt, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	r.mu.RLock()
	p, ok := r.cache[name]
	r.mu.RUnlock()
	if ok {
		return p.Clone(), nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok = r.cache[name]; ok {
		return p.Clone(), nil
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	for _, ext := range []string{".yaml", ".yml"} {
		path := filepath.Join(r.dir, name+ext)
		p, err := manifest.ParseFile(path)
		if err == nil {
			r.cache[name] = p
			return p.Clone(), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%w: %q", promptwire.ErrPromptNotFound, name)
}

// Reload clears the cache (for hot-reload in development).
func (r *Registry) Reload() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache = make(map[string]*manifest.Prompt)
}
