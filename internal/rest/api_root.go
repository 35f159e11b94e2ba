package rest

import (
	"net/http"

	"github.com/orbit-editor/update-server/api"
	"github.com/orbit-editor/update-server/internal/rest/response"
)

func (*Server) apiRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		w.Header().Set("Cache-Control", cacheControl)

		_ = response.NotFound().Render(w)

		return
	}

	_ = response.SyncResponse([]string{"/api", "/api/update"}).Render(w)
}

func (s *Server) apiInfo(w http.ResponseWriter, _ *http.Request) {
	resp := map[string]any{
		"environment": api.ServerEnvironment{
			Provider: s.provider.Type(),
			Origin:   s.provider.Origin(),
		},
	}

	_ = response.SyncResponse(resp).Render(w)
}
