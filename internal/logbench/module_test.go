package logbench

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shandysiswandi/logbench/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/logbench/internal/pkg/pkgerror"
	"github.com/stretchr/testify/require"
)

type mapConfig map[string]any

func (m mapConfig) GetInt(key string) int64 {
	v, _ := m[key].(int)
	return int64(v)
}

func (m mapConfig) GetString(key string) string {
	v, _ := m[key].(string)
	return v
}

func (mapConfig) Close() error { return nil }

func TestNewWiresWorkingUsecase(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"a.log", "b.log"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte("hello\n"), 0o600))
	}

	uc, err := New(Dependency{Config: pkgconfig.NewDefault()})
	require.NoError(t, err)

	rec, err := uc.Run(context.Background(), dir, 2)
	require.NoError(t, err)
	require.GreaterOrEqual(t, rec.SequentialMillis(), int64(0))
}

func TestNewRejectsBadPattern(t *testing.T) {
	_, err := New(Dependency{Config: mapConfig{pkgconfig.KeyBenchPattern: "[", pkgconfig.KeyBenchBufferSize: 16}})
	require.Equal(t, pkgerror.ExitInvalidArg, pkgerror.ExitCode(err))
}
