package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pipeforge/internal/domain/build"
	"pipeforge/internal/domain/render"
)

func TestMarshal_UsesTwoSpaceIndent(t *testing.T) {
	t.Parallel()

	inner := build.Mapping()
	build.PutString(inner, "name", "demo")
	body := build.Mapping()
	build.Put(body, "spec", inner)

	out, err := render.Marshal(build.Document("template", body))
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	assert.Equal(t, "template:", lines[0])
	assert.Equal(t, "  spec:", lines[1])
	assert.Equal(t, "    name: demo", lines[2])
}

func TestMarshal_RepeatedCalls_ByteIdentical(t *testing.T) {
	t.Parallel()

	body := build.Mapping()
	build.PutString(body, "name", "demo")
	build.PutStringMap(body, "tags", map[string]string{"b": "2", "a": "1", "c": "3"})

	first, err := render.Marshal(build.Document("environment", body))
	require.NoError(t, err)
	second, err := render.Marshal(build.Document("environment", body))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestMustMarshal_ReturnsText(t *testing.T) {
	t.Parallel()

	body := build.Mapping()
	build.PutString(body, "name", "demo")

	assert.Equal(t, "pipeline:\n  name: demo\n", render.MustMarshal(build.Document("pipeline", body)))
}
