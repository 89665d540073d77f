package promptwire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderScaffold_SchemaMode(t *testing.T) {
	t.Parallel()
	rt := SchemaReturn{Schema: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name": map[string]any{"type": "string"},
		},
	}}
	sc, err := RenderScaffold(rt)
	require.NoError(t, err)
	assert.Contains(t, sc.Instructions, "Act like a REST API")
	assert.Contains(t, sc.Instructions, "```json_schema")
	assert.Contains(t, sc.Instructions, `"type": "object"`)
	assert.Contains(t, sc.Instructions, "DO NOT add any other text other than the json response")
	assert.Equal(t, "```json", sc.Hint)
}

func TestRenderScaffold_PlainType(t *testing.T) {
	t.Parallel()
	sc, err := RenderScaffold(TypeReturn{Name: "yaml"})
	require.NoError(t, err)
	assert.Contains(t, sc.Instructions, "Your response should be a valid yaml only")
	assert.NotContains(t, sc.Instructions, "json_schema")
	assert.Contains(t, sc.Instructions, "DO NOT add any other text other than the yaml response")
	assert.Empty(t, sc.Hint)
}

func TestRenderScaffold_Deterministic(t *testing.T) {
	t.Parallel()
	rt := SchemaReturn{Schema: map[string]any{"type": "object"}}
	a, err := RenderScaffold(rt)
	require.NoError(t, err)
	b, err := RenderScaffold(rt)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRenderScaffold_UnserializableSchema(t *testing.T) {
	t.Parallel()
	rt := SchemaReturn{Schema: map[string]any{"callback": func() {}}}
	_, err := RenderScaffold(rt)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRender)
}

func TestTypeName(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "json", TypeName(SchemaReturn{}))
	assert.Equal(t, "text", TypeName(TypeReturn{Name: "text"}))
}
