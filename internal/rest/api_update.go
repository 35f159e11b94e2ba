package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/orbit-editor/update-server/internal/platform"
	"github.com/orbit-editor/update-server/internal/providers"
	"github.com/orbit-editor/update-server/internal/rest/response"
)

// cacheControl tells intermediate caches to retain responses for four hours.
const cacheControl = "s-maxage=14400"

// apiUpdate answers an update check from a client. The client reports its
// platform, release quality and current commit hash; the response is one of:
//   - 405 for anything other than a GET, before any parsing
//   - 404 with an empty body when platform/quality don't resolve
//   - 204 when no newer build exists for the client
//   - 200 with the published metadata, served verbatim
func (s *Server) apiUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		_ = response.MethodNotAllowed(http.MethodGet).Render(w)

		return
	}

	w.Header().Set("Cache-Control", cacheControl)

	// Resolve the requested platform. Malformed requests get a silent 404,
	// that's what existing clients expect.
	resolved, err := platform.Resolve(r.URL.Query().Get("platform"), r.URL.Query().Get("quality"))
	if err != nil {
		_ = response.NotFound().Render(w)

		return
	}

	// Fetch the published metadata. Origin failures are absorbed here, the
	// client only ever learns "no update".
	update, err := s.provider.Latest(r.Context(), resolved)
	if err != nil {
		if !errors.Is(err, providers.ErrNoUpdateAvailable) {
			slog.Debug("Unable to fetch update metadata", "quality", resolved.Quality, "os", resolved.OS, "arch", resolved.Arch, "error", err)
		}

		_ = response.NoContent().Render(w)

		return
	}

	// The client is current when its commit matches the published build.
	if update.Version() == r.URL.Query().Get("commit") {
		_ = response.NoContent().Render(w)

		return
	}

	_ = response.RawJSON(update.Payload()).Render(w)
}
