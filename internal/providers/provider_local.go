package providers

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/orbit-editor/update-server/api"
)

// The local provider, backed by a directory of published metadata. Used for
// development and tests.
type local struct {
	path string

	config map[string]string
}

func (*local) Type() string {
	return "local"
}

func (p *local) Origin() string {
	return p.path
}

func (p *local) Latest(_ context.Context, platform *api.Platform) (Update, error) {
	body, err := os.ReadFile(filepath.Join(p.path, filepath.FromSlash(platform.UpdatePath())))
	if err != nil {
		return nil, ErrNoUpdateAvailable
	}

	return parseUpdate(body)
}

func (p *local) Probe(_ context.Context) error {
	info, err := os.Stat(p.path)
	if err != nil {
		return err
	}

	if !info.IsDir() {
		return errors.New("metadata path isn't a directory: " + p.path)
	}

	return nil
}

func (p *local) load(_ context.Context) error {
	path := p.config["path"]
	if path == "" {
		return errors.New("local provider requires a metadata path")
	}

	p.path = path

	return nil
}
