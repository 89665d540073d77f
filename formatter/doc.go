// Package formatter defines the Formatter interface for producing
// provider-specific request bodies from promptwire's canonical message
// model, plus the shared scaffold/normalization pipeline and a registry
// mapping provider identifiers to formatter instances. Implementations
// live in provider-specific subpackages.
package formatter
