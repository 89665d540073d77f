// Package llama provides a promptwire formatter for Llama-family models
// on Bedrock. After normalization, system content is wrapped in
// <<SYS>>/<</SYS>> and user content in [INST]/[/INST]; the body is a
// single joined prompt string with max_gen_len and temperature.
package llama
