package pkguid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateRandomNodeIDRange(t *testing.T) {
	id, err := generateRandomNodeID()
	require.NoError(t, err)
	require.GreaterOrEqual(t, id, int64(0))
	require.LessOrEqual(t, id, int64(1023))
}

func TestSnowflakeGenerateUnique(t *testing.T) {
	gen, err := NewSnowflake()
	require.NoError(t, err)

	seen := make(map[int64]struct{}, 100)
	for i := 0; i < 100; i++ {
		id := gen.Generate()
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %d", id)
		seen[id] = struct{}{}
	}
}
