// Package promptwire normalizes chat-style messages into the request
// bodies expected by Bedrock-hosted LLM providers. It renders schema and
// type-name scaffolding, repairs role alternation, and leaves transport,
// credentials, and the actual invocation to the caller.
package promptwire
