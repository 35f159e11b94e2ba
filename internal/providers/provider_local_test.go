package providers_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/orbit-editor/update-server/api"
	"github.com/orbit-editor/update-server/internal/providers"
)

func TestLocalLatest(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	metadata := `{"version": "abc123", "url": "https://example.com/build.zip"}`

	path := filepath.Join(dir, "stable", "win32", "ia32", "system")
	require.NoError(t, os.MkdirAll(path, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(path, "latest.json"), []byte(metadata), 0o644))

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "stable", "darwin", "x64"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stable", "darwin", "x64", "latest.json"), []byte("not json"), 0o644))

	provider, err := providers.Load(context.Background(), "local", map[string]string{"path": dir})
	require.NoError(t, err)
	require.Equal(t, "local", provider.Type())
	require.Equal(t, dir, provider.Origin())
	require.NoError(t, provider.Probe(context.Background()))

	// Published metadata comes back verbatim.
	update, err := provider.Latest(context.Background(), &api.Platform{Quality: api.QualityStable, OS: api.OSWin32, Arch: api.ArchIA32, Type: api.PackageTypeSystem})
	require.NoError(t, err)
	require.Equal(t, "abc123", update.Version())
	require.Equal(t, metadata, string(update.Payload()))

	// Missing and malformed files both read as no update available.
	_, err = provider.Latest(context.Background(), &api.Platform{Quality: api.QualityInsider, OS: api.OSLinux, Arch: api.ArchX64})
	require.ErrorIs(t, err, providers.ErrNoUpdateAvailable)

	_, err = provider.Latest(context.Background(), &api.Platform{Quality: api.QualityStable, OS: api.OSDarwin, Arch: api.ArchX64})
	require.ErrorIs(t, err, providers.ErrNoUpdateAvailable)
}

func TestLocalProbe(t *testing.T) {
	t.Parallel()

	provider, err := providers.Load(context.Background(), "local", map[string]string{"path": "/nonexistent/metadata"})
	require.NoError(t, err)

	require.Error(t, provider.Probe(context.Background()))
}
