package server

import (
	"io"
	"net/http"

	"github.com/gorilla/schema"

	"github.com/matst80/slask-vods/pkg/common/jsoncompat"
	"github.com/matst80/slask-vods/pkg/types"
	"github.com/matst80/slask-vods/pkg/view"
)

// VideoRequest is the wire form of one view recomputation: the three facet
// queries plus the requested zero-based page. Clients pass page=0 on any
// filter edit and the adjacent page on navigation; the engine clamps either
// way.
type VideoRequest struct {
	Team   string `json:"team" schema:"team"`
	Player string `json:"player" schema:"player"`
	Map    string `json:"map" schema:"map"`
	Page   int    `json:"page" schema:"page"`
}

func (r *VideoRequest) Query() types.FilterQuery {
	return types.FilterQuery{Team: r.Team, Player: r.Player, Map: r.Map}
}

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

// GetQueryFromRequest fills a VideoRequest from the query string on GET and
// from a JSON body otherwise.
func GetQueryFromRequest(r *http.Request, videoRequest *VideoRequest) error {
	if r.Method == http.MethodGet {
		return decoder.Decode(videoRequest, r.URL.Query())
	}
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	return jsoncompat.Unmarshal(data, videoRequest)
}

// VideoResponse is the rendering contract consumed by the front-end: the
// visible slice (null when Empty), the hit count and the page summary.
type VideoResponse struct {
	Videos    []types.Video `json:"videos"`
	Empty     bool          `json:"empty"`
	TotalHits int           `json:"totalHits"`
	Summary   view.Summary  `json:"summary"`
}

// FacetResponse carries the selectable facet candidates.
type FacetResponse struct {
	Teams      []string          `json:"teams"`
	Maps       []string          `json:"maps"`
	Players    []string          `json:"players"`
	PlayerKeys map[string]string `json:"playerKeys"`
}
