package formatter

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/skosovsky/promptwire"
)

// Registry maps provider identifiers to formatter instances. A lookup of
// an unregistered id fails with promptwire.ErrUnsupportedProvider, so no
// default-variant fallthrough exists. Safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]Formatter
}

// NewRegistry returns a Registry pre-populated with the given formatters.
func NewRegistry(formatters ...Formatter) *Registry {
	r := &Registry{byName: make(map[string]Formatter, len(formatters))}
	for _, f := range formatters {
		r.Register(f)
	}
	return r
}

// Register adds or replaces a formatter under its Name.
func (r *Registry) Register(f Formatter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byName[f.Name()] = f
}

// Get returns the formatter registered under name.
func (r *Registry) Get(name string) (Formatter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", promptwire.ErrUnsupportedProvider, name)
	}
	return f, nil
}

// Names returns the registered provider identifiers, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.byName))
}

// BuildAll builds the request body for the same messages and return type
// across several providers concurrently. Each provider receives its own
// copy of msgs. Fails fast on the first error, wrapped in a
// promptwire.ProviderError naming the provider; respects ctx cancellation.
func (r *Registry) BuildAll(ctx context.Context, names []string, msgs []promptwire.Message, rt promptwire.ReturnType) (map[string][]byte, error) {
	bodies := make([][]byte, len(names))
	g, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := r.Get(name)
			if err != nil {
				return err
			}
			own := make([]promptwire.Message, len(msgs))
			copy(own, msgs)
			body, err := f.BuildBody(own, rt)
			if err != nil {
				return &promptwire.ProviderError{Provider: name, Err: err}
			}
			bodies[i] = body
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	out := make(map[string][]byte, len(names))
	for i, name := range names {
		out[name] = bodies[i]
	}
	return out, nil
}
