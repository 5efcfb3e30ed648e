package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/matst80/slask-vods/pkg/common"
	"github.com/matst80/slask-vods/pkg/common/jsoncompat"
	"github.com/matst80/slask-vods/pkg/facet"
	"github.com/matst80/slask-vods/pkg/types"
	"github.com/matst80/slask-vods/pkg/view"
)

// WebServer is the stateless HTTP projection of the browsing core. Every
// request builds a fresh view engine over the shared immutable catalogue,
// so concurrent requests never share mutable state.
type WebServer struct {
	Videos   []types.Video
	Facets   *facet.Index
	Policy   types.MatchPolicy
	Tracking types.Tracking
	Cache    *Cache
}

func cacheKey(req *VideoRequest) string {
	return strings.ToLower(fmt.Sprintf("videos:%s|%s|%s|%d", req.Team, req.Player, req.Map, req.Page))
}

func (ws *WebServer) getVideos(r *http.Request, sessionId string) (any, error) {
	req := VideoRequest{}
	if err := GetQueryFromRequest(r, &req); err != nil {
		return nil, err
	}
	viewRequests.Inc()

	key := cacheKey(&req)
	if ws.Cache != nil {
		if data, ok := ws.Cache.Get(r.Context(), key); ok {
			cacheHits.Inc()
			return json.RawMessage(data), nil
		}
	}

	eng := view.NewEngine(ws.Videos, ws.Facets, ws.Policy)
	v := eng.Apply(req.Query(), req.Page)
	if v.Empty {
		emptyViews.Inc()
	}
	if ws.Tracking != nil {
		go ws.Tracking.TrackFilter(sessionId, req.Query(), req.Page, v.TotalHits)
	}

	res := VideoResponse{
		Videos:    v.Videos,
		Empty:     v.Empty,
		TotalHits: v.TotalHits,
		Summary:   v.Summary,
	}
	data, err := jsoncompat.Marshal(res)
	if err != nil {
		return nil, err
	}
	if ws.Cache != nil {
		_ = ws.Cache.Set(r.Context(), key, data)
	}
	return json.RawMessage(data), nil
}

func (ws *WebServer) getFacets(r *http.Request, sessionId string) (any, error) {
	facetRequests.Inc()
	return FacetResponse{
		Teams:      ws.Facets.Teams,
		Maps:       ws.Facets.Maps,
		Players:    ws.Facets.Players,
		PlayerKeys: ws.Facets.PlayerKeys(),
	}, nil
}

// ClientHandler returns the public API mux, mounted under /api.
func (ws *WebServer) ClientHandler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/videos", common.JsonHandler(ws.Tracking, ws.getVideos))
	mux.HandleFunc("/facets", common.JsonHandler(ws.Tracking, ws.getFacets))
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}
