// Package claude provides a promptwire formatter for Anthropic Claude on
// Bedrock. The leading system message (the injected instruction scaffold,
// merged with any caller system content) is promoted to the top-level
// system field; the remaining messages pass through as role/content pairs.
package claude
