package providers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/orbit-editor/update-server/api"
)

// The origin provider, backed by a remote JSON store.
type origin struct {
	serverURL string
	client    *http.Client

	config map[string]string
}

func (*origin) Type() string {
	return "origin"
}

func (p *origin) Origin() string {
	return p.serverURL
}

func (p *origin) Latest(ctx context.Context, platform *api.Platform) (Update, error) {
	// Prepare the request.
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.serverURL+"/"+platform.UpdatePath(), nil)
	if err != nil {
		return nil, errors.New("unable to create http request: " + err.Error())
	}

	req.Header.Set("Accept", "application/json")

	// Fetch the metadata.
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, errors.New("unable to get http response: " + err.Error())
	}

	defer resp.Body.Close()

	// Any non-success status means no metadata is published for the platform.
	if resp.StatusCode != http.StatusOK {
		return nil, ErrNoUpdateAvailable
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.New("unable to read http response: " + err.Error())
	}

	return parseUpdate(body)
}

func (p *origin) Probe(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, p.serverURL+"/", nil)
	if err != nil {
		return errors.New("unable to create http request: " + err.Error())
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.New("origin unreachable: " + err.Error())
	}

	_ = resp.Body.Close()

	return nil
}

func (p *origin) load(_ context.Context) error {
	serverURL := strings.TrimSuffix(p.config["origin"], "/")
	if serverURL == "" {
		return errors.New("origin provider requires an origin URL")
	}

	parsed, err := url.Parse(serverURL)
	if err != nil {
		return errors.New("invalid origin URL: " + err.Error())
	}

	if !slices.Contains([]string{"http", "https"}, parsed.Scheme) {
		return errors.New("invalid origin URL scheme '" + parsed.Scheme + "'")
	}

	p.serverURL = serverURL
	p.client = &http.Client{}

	return nil
}
