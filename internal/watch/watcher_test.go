package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestScriptWatcherRegenerates(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	script := filepath.Join(dir, "script.txt")
	require.NoError(t, os.WriteFile(script, []byte("hello"), 0o644))

	changed := make(chan string, 8)
	w, err := New(script, 20*time.Millisecond, func(_ context.Context, path string) error {
		changed <- path
		return nil
	}, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(script, []byte("hello friends"), 0o644))

	select {
	case path := <-changed:
		want, _ := filepath.Abs(script)
		require.Equal(t, want, path)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for regeneration")
	}

	require.NoError(t, w.Stop())
}

func TestScriptWatcherStopWithoutStart(t *testing.T) {
	defer goleak.VerifyNone(t)

	w, err := New(filepath.Join(t.TempDir(), "script.txt"), 0, nil, nil)
	require.NoError(t, err)
	require.NoError(t, w.Stop())
}

func TestScriptWatcherContextCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	w, err := New(filepath.Join(dir, "script.txt"), 0, nil, nil)
	require.NoError(t, err)
	require.NoError(t, w.Start(ctx))

	cancel()
	require.NoError(t, w.Stop())
}
