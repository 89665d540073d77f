package promptwire

// Normalize repairs a message list for a provider wire protocol in a
// single left-to-right pass: when systemRoleSupported is false, system
// messages are demoted to user; adjacent messages with the same role are
// merged with a blank-line separator. Stable, no reordering, no content
// loss; output length is at most the input length. The input slice and
// its messages are left untouched.
func Normalize(msgs []Message, systemRoleSupported bool) []Message {
	out := make([]Message, 0, len(msgs))
	for _, m := range msgs {
		if !systemRoleSupported && m.Role == RoleSystem {
			m.Role = RoleUser
		}
		if n := len(out); n > 0 && out[n-1].Role == m.Role {
			out[n-1].Content += "\n\n" + m.Content
			continue
		}
		out = append(out, m)
	}
	return out
}
