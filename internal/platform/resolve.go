// Package platform turns the raw platform/quality request parameters into a
// fully resolved api.Platform.
package platform

import (
	"errors"
	"strings"

	"github.com/orbit-editor/update-server/api"
)

// ErrInvalidQuality is returned when the quality parameter is missing or not a known release channel.
var ErrInvalidQuality = errors.New("invalid quality")

// ErrInvalidPlatform is returned when the platform parameter is missing or doesn't resolve to a supported platform.
var ErrInvalidPlatform = errors.New("invalid platform")

// Resolve parses the raw platform and quality request parameters.
//
// The platform string is made of up to three dash-separated tokens
// ("<os>[-<arch>[-<type>]]"), with per-OS defaults for the missing tokens.
// The defaulting rules are a fixed contract with existing clients and must
// not be tightened or simplified:
//   - "win32" alone means the ia32 system installer.
//   - On win32, a second token that names a package type ("win32-user")
//     stands in for the type with the architecture defaulting to ia32.
//   - On darwin, the architecture defaults to x64.
//   - On linux, the architecture is required.
//
// Resolution is all or nothing: any token that doesn't fit the supported
// sets fails the whole request.
func Resolve(rawPlatform string, rawQuality string) (*api.Platform, error) {
	quality := api.Quality(rawQuality)
	if !quality.IsValid() {
		return nil, ErrInvalidQuality
	}

	if rawPlatform == "" {
		return nil, ErrInvalidPlatform
	}

	// Split into the (os, arch, type) token positions. Anything beyond the
	// third token is ignored, matching the historical behavior.
	tokens := strings.Split(rawPlatform, "-")

	osToken := tokens[0]

	archToken := ""
	if len(tokens) > 1 {
		archToken = tokens[1]
	}

	typeToken := ""
	if len(tokens) > 2 {
		typeToken = tokens[2]
	}

	osName := api.OS(osToken)
	if !osName.IsValid() {
		return nil, ErrInvalidPlatform
	}

	var arch api.Architecture

	var pkgType api.PackageType

	switch osName {
	case api.OSWin32:
		switch {
		case archToken == "":
			// Bare "win32" requests the ia32 system installer.
			arch = api.ArchIA32
			pkgType = api.PackageTypeSystem
		case api.PackageType(archToken).IsValid():
			// The arch position carries a package type ("win32-user"),
			// so reinterpret it and fall back to the default architecture.
			arch = api.ArchIA32
			pkgType = api.PackageType(archToken)
		default:
			arch = api.Architecture(archToken)

			// An explicit third token is taken as-is here; it's only
			// checked by the package type validation below.
			if typeToken == "" {
				pkgType = api.PackageTypeSystem
			} else {
				pkgType = api.PackageType(typeToken)
			}
		}

		if !pkgType.IsValid() {
			return nil, ErrInvalidPlatform
		}
	case api.OSDarwin:
		if archToken == "" {
			arch = api.ArchX64
		} else {
			arch = api.Architecture(archToken)
		}
	case api.OSLinux:
		// No defaulting on Linux, the architecture has to be explicit.
		arch = api.Architecture(archToken)
	}

	if !arch.IsValid() {
		return nil, ErrInvalidPlatform
	}

	resolved := api.Platform{
		Quality: quality,
		OS:      osName,
		Arch:    arch,
		Type:    pkgType,
	}

	return &resolved, nil
}
