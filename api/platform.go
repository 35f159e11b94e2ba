package api

import (
	"slices"
)

// Quality represents a release channel.
type Quality string

// The supported release channels.
const (
	QualityInsider Quality = "insider"
	QualityStable  Quality = "stable"
)

// OS represents a client operating system.
type OS string

// The supported operating systems.
const (
	OSDarwin OS = "darwin"
	OSLinux  OS = "linux"
	OSWin32  OS = "win32"
)

// Architecture represents a client CPU architecture.
type Architecture string

// The supported architectures.
const (
	ArchARM64 Architecture = "arm64"
	ArchIA32  Architecture = "ia32"
	ArchX64   Architecture = "x64"
)

// PackageType represents the install flavor of a Windows build. It has no
// meaning for other operating systems.
type PackageType string

// The supported Windows package types.
const (
	PackageTypeSystem  PackageType = "system"
	PackageTypeArchive PackageType = "archive"
	PackageTypeUser    PackageType = "user"
)

// IsValid checks whether the quality is part of the supported set.
func (q Quality) IsValid() bool {
	return slices.Contains([]Quality{QualityInsider, QualityStable}, q)
}

// IsValid checks whether the OS is part of the supported set.
func (o OS) IsValid() bool {
	return slices.Contains([]OS{OSDarwin, OSLinux, OSWin32}, o)
}

// IsValid checks whether the architecture is part of the supported set.
func (a Architecture) IsValid() bool {
	return slices.Contains([]Architecture{ArchARM64, ArchIA32, ArchX64}, a)
}

// IsValid checks whether the package type is part of the supported set.
func (t PackageType) IsValid() bool {
	return slices.Contains([]PackageType{PackageTypeSystem, PackageTypeArchive, PackageTypeUser}, t)
}

// Platform describes a fully resolved client platform.
type Platform struct {
	Quality Quality      `json:"quality" yaml:"quality"`
	OS      OS           `json:"os"      yaml:"os"`
	Arch    Architecture `json:"arch"    yaml:"arch"`

	// Type is only set for win32 clients.
	Type PackageType `json:"type,omitempty" yaml:"type,omitempty"`
}

// UpdatePath returns the metadata path for the platform, relative to the
// origin root ("<quality>/<os>/<arch>[/<type>]/latest.json").
func (p *Platform) UpdatePath() string {
	path := string(p.Quality) + "/" + string(p.OS) + "/" + string(p.Arch)

	if p.Type != "" {
		path += "/" + string(p.Type)
	}

	return path + "/latest.json"
}
