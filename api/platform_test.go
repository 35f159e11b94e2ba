package api_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/orbit-editor/update-server/api"
)

func TestUpdatePath(t *testing.T) {
	t.Parallel()

	platform := api.Platform{
		Quality: api.QualityStable,
		OS:      api.OSDarwin,
		Arch:    api.ArchX64,
	}
	require.Equal(t, "stable/darwin/x64/latest.json", platform.UpdatePath())

	platform = api.Platform{
		Quality: api.QualityInsider,
		OS:      api.OSWin32,
		Arch:    api.ArchIA32,
		Type:    api.PackageTypeUser,
	}
	require.Equal(t, "insider/win32/ia32/user/latest.json", platform.UpdatePath())
}

func TestEnumValidation(t *testing.T) {
	t.Parallel()

	require.True(t, api.Quality("stable").IsValid())
	require.False(t, api.Quality("nightly").IsValid())
	require.False(t, api.Quality("").IsValid())

	require.True(t, api.OS("win32").IsValid())
	require.False(t, api.OS("windows").IsValid())

	require.True(t, api.Architecture("arm64").IsValid())
	require.False(t, api.Architecture("amd64").IsValid())

	require.True(t, api.PackageType("archive").IsValid())
	require.False(t, api.PackageType("msi").IsValid())
}
