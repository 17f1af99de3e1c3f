package envvar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/envkit/pkg/envvar"
)

func TestMapSource(t *testing.T) {
	t.Parallel()

	seed := map[string]string{"A": "1"}
	src := envvar.NewMapSource(seed)

	// the seed map is copied
	seed["B"] = "2"
	assert.Equal(t, 1, src.Len())

	require.NoError(t, src.Set("C", "3"))
	require.NoError(t, src.Unset("A"))
	require.NoError(t, src.Unset("MISSING"))

	v, ok := src.Lookup("C")
	assert.True(t, ok)
	assert.Equal(t, "3", v)
	assert.Equal(t, []string{"C=3"}, src.Environ())

	assert.ErrorIs(t, src.Set("", "v"), envvar.ErrInvalidVariable)
	assert.ErrorIs(t, src.Set("K", "a\x00b"), envvar.ErrInvalidVariable)
}
