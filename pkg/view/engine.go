package view

import (
	"strings"

	"github.com/matst80/slask-vods/pkg/facet"
	"github.com/matst80/slask-vods/pkg/types"
)

// Summary is the pagination envelope handed to the presentation layer.
// Page is one-based for display, or 0 when nothing matched.
type Summary struct {
	Page    int  `json:"page"`
	MaxPage int  `json:"maxPage"`
	IsFirst bool `json:"isFirst"`
	IsLast  bool `json:"isLast"`
}

// View is the result of one recomputation: the visible slice in catalogue
// order plus the page summary. Empty is a distinguished signal so the
// presentation layer can show a "no matches" state instead of a blank list.
type View struct {
	Videos    []types.Video `json:"videos"`
	Empty     bool          `json:"empty"`
	TotalHits int           `json:"totalHits"`
	Summary   Summary       `json:"summary"`
}

// Engine owns the filter state and pagination window for one browsing
// session and recomputes the view on every transition. It holds the
// catalogue and facet index by reference and never mutates them.
// Single-threaded by design: every transition runs to completion before
// the next event is handled.
type Engine struct {
	videos []types.Video
	facets *facet.Index
	policy types.MatchPolicy

	query types.FilterQuery
	page  int
}

// NewEngine builds a view engine over a normalized catalogue. The match
// policy is fixed for the engine's lifetime. The record slice must be
// non-nil and normalized; that is a caller precondition, not a runtime
// error path.
func NewEngine(videos []types.Video, facets *facet.Index, policy types.MatchPolicy) *Engine {
	return &Engine{videos: videos, facets: facets, policy: policy}
}

// SetTeam updates the team query and resets to the first page.
func (e *Engine) SetTeam(query string) View {
	e.query.Team = query
	e.page = 0
	return e.Compute()
}

// SetPlayer updates the player query and resets to the first page.
func (e *Engine) SetPlayer(query string) View {
	e.query.Player = query
	e.page = 0
	return e.Compute()
}

// SetMap updates the map query and resets to the first page.
func (e *Engine) SetMap(query string) View {
	e.query.Map = query
	e.page = 0
	return e.Compute()
}

// Clear drops all three queries. Filters are only ever reset explicitly.
func (e *Engine) Clear() View {
	e.query = types.FilterQuery{}
	e.page = 0
	return e.Compute()
}

// NextPage moves forward without touching the filters. Requests past the
// last page clamp silently.
func (e *Engine) NextPage() View {
	e.page++
	return e.Compute()
}

// PrevPage moves backward without touching the filters.
func (e *Engine) PrevPage() View {
	e.page--
	return e.Compute()
}

// SetPage jumps to a requested page, clamped on compute.
func (e *Engine) SetPage(page int) View {
	e.page = page
	return e.Compute()
}

// Apply replaces the whole state in one step. Stateless consumers (the
// HTTP surface) use this to map a request onto a fresh engine.
func (e *Engine) Apply(query types.FilterQuery, page int) View {
	e.query = query
	e.page = page
	return e.Compute()
}

// Query returns the current filter state.
func (e *Engine) Query() types.FilterQuery {
	return e.query
}

// predicates holds the per-recomputation resolution of the three queries.
// A facet that resolved to nothing places no constraint.
type predicates struct {
	team      string
	hasTeam   bool
	mapName   string
	hasMap    bool
	playerKey string
	hasKey    bool
	playerSub string
}

func (e *Engine) resolve() predicates {
	p := predicates{}
	if q := e.query.Team; q != "" {
		if _, ok := e.facets.ResolveTeam(q); ok {
			p.team = q
			p.hasTeam = true
		}
	}
	if q := e.query.Map; q != "" {
		if _, ok := e.facets.ResolveMap(q); ok {
			p.mapName = q
			p.hasMap = true
		}
	}
	if q := e.query.Player; q != "" {
		if key, ok := e.facets.ResolvePlayer(q); ok {
			p.playerKey = key
			p.hasKey = true
		} else if e.policy == types.ExactWithSubstringFallback {
			p.playerSub = strings.ToLower(q)
		}
	}
	return p
}

func (p *predicates) match(v *types.Video) bool {
	if p.hasTeam && !strings.EqualFold(v.Team, p.team) {
		return false
	}
	if p.hasMap && !strings.EqualFold(v.Map, p.mapName) {
		return false
	}
	if p.hasKey {
		return v.TokenLower == p.playerKey
	}
	if p.playerSub != "" {
		return strings.Contains(v.TokenLower, p.playerSub)
	}
	return true
}

// Compute runs one full recomputation cycle: filter in catalogue order,
// clamp the page, slice, and emit the summary. It is idempotent for an
// unchanged state.
func (e *Engine) Compute() View {
	p := e.resolve()

	filtered := make([]types.Video, 0, len(e.videos))
	for i := range e.videos {
		if p.match(&e.videos[i]) {
			filtered = append(filtered, e.videos[i])
		}
	}

	total := len(filtered)
	maxPage := MaxPage(total)
	e.page = Clamp(e.page, maxPage)

	v := View{
		TotalHits: total,
		Summary: Summary{
			MaxPage: maxPage + 1,
			IsFirst: e.page == 0,
			IsLast:  e.page == maxPage || total == 0,
		},
	}
	if total == 0 {
		v.Empty = true
		return v
	}
	v.Summary.Page = e.page + 1

	start := e.page * PageSize
	end := min(start+PageSize, total)
	v.Videos = filtered[start:end]
	return v
}
