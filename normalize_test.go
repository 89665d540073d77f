package promptwire

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_MergesAdjacentSameRole(t *testing.T) {
	t.Parallel()
	in := []Message{
		{Role: RoleUser, Content: "first"},
		{Role: RoleUser, Content: "second"},
		{Role: RoleAssistant, Content: "reply"},
	}
	out := Normalize(in, true)
	require.Len(t, out, 2)
	assert.Equal(t, "first\n\nsecond", out[0].Content)
	assert.Equal(t, RoleUser, out[0].Role)
	assert.Equal(t, RoleAssistant, out[1].Role)
}

func TestNormalize_NoAdjacentSameRole(t *testing.T) {
	t.Parallel()
	in := []Message{
		{Role: RoleSystem, Content: "a"},
		{Role: RoleSystem, Content: "b"},
		{Role: RoleUser, Content: "c"},
		{Role: RoleUser, Content: "d"},
		{Role: RoleAssistant, Content: "e"},
		{Role: RoleUser, Content: "f"},
	}
	for _, supported := range []bool{true, false} {
		out := Normalize(in, supported)
		for i := 1; i < len(out); i++ {
			assert.NotEqual(t, out[i-1].Role, out[i].Role, "adjacent roles at %d (system supported %v)", i, supported)
		}
	}
}

func TestNormalize_DemotesSystemWhenUnsupported(t *testing.T) {
	t.Parallel()
	in := []Message{
		{Role: RoleSystem, Content: "rules"},
		{Role: RoleUser, Content: "question"},
	}
	out := Normalize(in, false)
	require.Len(t, out, 1)
	assert.Equal(t, RoleUser, out[0].Role)
	assert.Equal(t, "rules\n\nquestion", out[0].Content)
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()
	in := []Message{
		{Role: RoleSystem, Content: "a"},
		{Role: RoleUser, Content: "b"},
		{Role: RoleUser, Content: "c"},
		{Role: RoleAssistant, Content: "d"},
	}
	once := Normalize(in, false)
	twice := Normalize(once, false)
	assert.Equal(t, once, twice)
}

func TestNormalize_ContentPreserving(t *testing.T) {
	t.Parallel()
	in := []Message{
		{Role: RoleSystem, Content: "a"},
		{Role: RoleSystem, Content: "b"},
		{Role: RoleUser, Content: "c"},
		{Role: RoleAssistant, Content: "d"},
		{Role: RoleAssistant, Content: "e"},
	}
	out := Normalize(in, true)
	var joined strings.Builder
	for _, m := range out {
		joined.WriteString(m.Content)
	}
	got := strings.ReplaceAll(joined.String(), "\n\n", "")
	assert.Equal(t, "abcde", got, "all input content present, in order")
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	t.Parallel()
	in := []Message{
		{Role: RoleSystem, Content: "rules"},
		{Role: RoleSystem, Content: "more rules"},
	}
	_ = Normalize(in, false)
	assert.Equal(t, RoleSystem, in[0].Role)
	assert.Equal(t, "rules", in[0].Content)
	assert.Equal(t, "more rules", in[1].Content)
}

func TestNormalize_Empty(t *testing.T) {
	t.Parallel()
	out := Normalize(nil, true)
	assert.Empty(t, out)
}
