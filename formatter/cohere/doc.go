// Package cohere provides promptwire formatters for Cohere Command and
// Command R on Bedrock. Both flatten the conversation into "ROLE: content"
// lines with the role tokens USER and CHATBOT; system content is folded
// into a USER turn under an "## Instructions" heading. Command emits the
// result as prompt, Command R as message with a fixed max_tokens.
package cohere
