// Package providers implements the update metadata sources.
package providers

import (
	"context"
	"encoding/json"

	"github.com/orbit-editor/update-server/api"
)

// Update represents the latest build published for a platform.
type Update interface {
	// Version returns the commit hash the build was produced from, or an
	// empty string if the metadata doesn't carry one.
	Version() string

	// Payload returns the metadata exactly as published, for verbatim
	// delivery to the client.
	Payload() json.RawMessage
}

// Provider represents an update metadata source.
type Provider interface {
	Type() string
	Origin() string

	// Latest returns the published metadata for the platform, or
	// ErrNoUpdateAvailable when none is published.
	Latest(ctx context.Context, platform *api.Platform) (Update, error)

	// Probe checks that the metadata source is reachable.
	Probe(ctx context.Context) error
}

// The concrete update held by every provider.
type jsonUpdate struct {
	version string
	payload json.RawMessage
}

func (u *jsonUpdate) Version() string {
	return u.version
}

func (u *jsonUpdate) Payload() json.RawMessage {
	return u.payload
}
