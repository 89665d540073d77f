package promptwire

import (
	"errors"
	"fmt"
)

// Sentinel errors for scaffold rendering, formatting, and manifest loading.
// All use prefix "promptwire:" for identification. Callers should use
// errors.Is/errors.As.
var (
	ErrRender              = errors.New("promptwire: scaffold rendering failed")
	ErrUnsupportedProvider = errors.New("promptwire: provider not registered")
	ErrMalformedInput      = errors.New("promptwire: message list is structurally invalid")
	ErrInvalidManifest     = errors.New("promptwire: manifest file is malformed")
	ErrPromptNotFound      = errors.New("promptwire: prompt not found in registry")
)

// ProviderError wraps a sentinel error with the provider that produced it.
// Use errors.Is(err, ErrUnsupportedProvider) and errors.As(err, &providerErr)
// to inspect.
type ProviderError struct {
	Provider string
	Err      error
}

// Error implements error.
func (e *ProviderError) Error() string {
	return fmt.Sprintf("promptwire: provider %q: %v", e.Provider, e.Err)
}

// Unwrap returns the wrapped error for errors.Is/errors.As.
func (e *ProviderError) Unwrap() error { return e.Err }

// Compile-time check that ProviderError implements error.
var _ error = (*ProviderError)(nil)
