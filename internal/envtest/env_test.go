package envtest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetenv(t *testing.T) {
	t.Parallel()

	env := MustPairs(
		"FOO", "bar",
		"BAZ", "",
	)

	assert.Equal(t, "bar", env.Getenv("FOO"))
	assert.Empty(t, env.Getenv("BAZ"))
	assert.Empty(t, env.Getenv("QUX"))
	assert.Empty(t, Empty.Getenv("FOO"))
}

func TestMustPairsOdd(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, "3 items in environment are not even", func() {
		MustPairs("FOO", "bar", "BAZ")
	})
}
