package view

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/matst80/slask-vods/pkg/facet"
	"github.com/matst80/slask-vods/pkg/types"
)

// testCatalogue: 15 Alpha videos on mirage fronted by s1mple, 5 Beta videos
// on inferno fronted by device. Only s1mple crosses the candidate threshold.
func testCatalogue() []types.Video {
	videos := make([]types.Video, 0, 20)
	for i := 0; i < 15; i++ {
		videos = append(videos, types.Normalize(types.RawVideo{
			Id:    fmt.Sprintf("a%d", i),
			Title: fmt.Sprintf("s1mple POV #%d", i),
			Team:  "Alpha",
			Map:   "mirage",
		}))
	}
	for i := 0; i < 5; i++ {
		videos = append(videos, types.Normalize(types.RawVideo{
			Id:    fmt.Sprintf("b%d", i),
			Title: fmt.Sprintf("device POV #%d", i),
			Team:  "Beta",
			Map:   "inferno",
		}))
	}
	return videos
}

func testEngine(policy types.MatchPolicy) *Engine {
	videos := testCatalogue()
	return NewEngine(videos, facet.NewIndex(videos), policy)
}

func TestTeamFilterExactCaseInsensitive(t *testing.T) {
	e := testEngine(types.ExactWithSubstringFallback)
	v := e.SetTeam("alpha")
	if v.TotalHits != 15 {
		t.Errorf("expected 15 hits for team alpha, got %d", v.TotalHits)
	}
	v = e.SetTeam("BETA")
	if v.TotalHits != 5 {
		t.Errorf("expected 5 hits for team BETA, got %d", v.TotalHits)
	}
}

func TestUnresolvedTeamQueryIsNoFilter(t *testing.T) {
	e := testEngine(types.ExactWithSubstringFallback)
	v := e.SetTeam("alp")
	if v.TotalHits != 20 {
		t.Errorf("expected partial team query to pass everything, got %d hits", v.TotalHits)
	}
}

func TestIntersectionMonotone(t *testing.T) {
	e := testEngine(types.ExactWithSubstringFallback)
	prev := e.Compute().TotalHits
	for _, v := range []View{e.SetTeam("Alpha"), e.SetMap("mirage"), e.SetPlayer("s1mple")} {
		if v.TotalHits > prev {
			t.Errorf("adding a constraint grew the filtered set: %d -> %d", prev, v.TotalHits)
		}
		prev = v.TotalHits
	}
	if prev != 15 {
		t.Errorf("expected 15 hits with all three facets on the Alpha set, got %d", prev)
	}
}

func TestEmptyState(t *testing.T) {
	e := testEngine(types.ExactWithSubstringFallback)
	e.SetTeam("Alpha")
	v := e.SetMap("inferno")
	if !v.Empty {
		t.Fatalf("expected an explicit empty signal, got %+v", v)
	}
	if v.Videos != nil {
		t.Errorf("expected nil slice in empty state, got %v", v.Videos)
	}
	want := Summary{Page: 0, MaxPage: 1, IsFirst: true, IsLast: true}
	if v.Summary != want {
		t.Errorf("expected empty summary %+v, got %+v", want, v.Summary)
	}
}

func TestSubstringFallback(t *testing.T) {
	e := testEngine(types.ExactWithSubstringFallback)
	v := e.SetPlayer("1mp")
	if v.TotalHits != 15 {
		t.Errorf("expected substring 1mp to match the s1mple set, got %d", v.TotalHits)
	}
	// device is below the candidate threshold, so this goes through the
	// substring path too
	v = e.SetPlayer("DEVICE")
	if v.TotalHits != 5 {
		t.Errorf("expected substring device to match 5 videos, got %d", v.TotalHits)
	}
}

func TestExactOnlyPolicy(t *testing.T) {
	e := testEngine(types.ExactOnly)
	v := e.SetPlayer("s1mple")
	if v.TotalHits != 15 {
		t.Errorf("expected exact candidate match to filter, got %d", v.TotalHits)
	}
	v = e.SetPlayer("1mp")
	if v.TotalHits != 20 {
		t.Errorf("expected non-candidate query to be no filter under exact-only, got %d", v.TotalHits)
	}
}

func TestClearedQueryIsNoFilter(t *testing.T) {
	e := testEngine(types.ExactWithSubstringFallback)
	e.SetPlayer("s1mple")
	v := e.SetPlayer("")
	if v.TotalHits != 20 {
		t.Errorf("expected cleared player query to pass everything, got %d", v.TotalHits)
	}
}

func TestPaginationWindow(t *testing.T) {
	e := testEngine(types.ExactWithSubstringFallback)

	v := e.Compute()
	if len(v.Videos) != PageSize {
		t.Errorf("expected a full first page, got %d", len(v.Videos))
	}
	if v.Summary.Page != 1 || !v.Summary.IsFirst || v.Summary.IsLast {
		t.Errorf("unexpected first page summary %+v", v.Summary)
	}

	v = e.NextPage()
	if len(v.Videos) != 5 {
		t.Errorf("expected 5 videos on the last page, got %d", len(v.Videos))
	}
	if v.Summary.Page != 2 || !v.Summary.IsLast || v.Summary.IsFirst {
		t.Errorf("unexpected last page summary %+v", v.Summary)
	}
	if v.Videos[0].Id != "b0" {
		t.Errorf("expected catalogue order to be kept, got first id %q", v.Videos[0].Id)
	}

	// forward past the end and backward past the start clamp silently
	v = e.NextPage()
	if v.Summary.Page != 2 {
		t.Errorf("expected clamp on the last page, got %+v", v.Summary)
	}
	e.PrevPage()
	v = e.PrevPage()
	if v.Summary.Page != 1 {
		t.Errorf("expected clamp on the first page, got %+v", v.Summary)
	}
}

func TestRequestedPageClamped(t *testing.T) {
	videos := testCatalogue()[:16]
	e := NewEngine(videos, facet.NewIndex(videos), types.ExactWithSubstringFallback)
	v := e.SetPage(5)
	if v.Summary.Page != 2 || v.Summary.MaxPage != 2 {
		t.Errorf("expected page 5 of 16 hits to clamp to the second page, got %+v", v.Summary)
	}
}

func TestFilterChangeResetsPage(t *testing.T) {
	e := testEngine(types.ExactWithSubstringFallback)
	e.SetPage(1)
	v := e.SetTeam("Alpha")
	if v.Summary.Page != 1 || !v.Summary.IsFirst {
		t.Errorf("expected filter edit to reset to the first page, got %+v", v.Summary)
	}
}

func TestComputeIdempotent(t *testing.T) {
	e := testEngine(types.ExactWithSubstringFallback)
	e.SetTeam("Alpha")
	first := e.Compute()
	second := e.Compute()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical views for unchanged state:\n%+v\n%+v", first, second)
	}
}

func TestClearResetsAllFacets(t *testing.T) {
	e := testEngine(types.ExactWithSubstringFallback)
	e.SetTeam("Alpha")
	e.SetMap("mirage")
	v := e.Clear()
	if v.TotalHits != 20 {
		t.Errorf("expected clear to drop all filters, got %d hits", v.TotalHits)
	}
	if q := e.Query(); !q.IsEmpty() {
		t.Errorf("expected empty query after clear, got %+v", q)
	}
}
