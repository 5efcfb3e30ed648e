package facet

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/matst80/slask-vods/pkg/types"
)

// PlayerMinCount is the minimum number of titles a derived token must lead
// before it becomes a player candidate. One-off words from individual
// uploads stay out of the facet list this way.
const PlayerMinCount = 8

// Index holds the selectable candidate values for the three facets, built
// once from the full normalized catalogue and immutable afterwards.
type Index struct {
	Teams   []string `json:"teams"`
	Maps    []string `json:"maps"`
	Players []string `json:"players"`

	teamLookup   map[string]string
	mapLookup    map[string]string
	playerLookup map[string]string
}

// keyValues collects distinct raw field values for one facet. The lookup is
// keyed case-insensitively and keeps the first-seen form, so casing variants
// of the same name all resolve to one canonical candidate.
type keyValues struct {
	candidates []string
	lookup     map[string]string
	seen       map[string]struct{}
}

func newKeyValues() *keyValues {
	return &keyValues{lookup: map[string]string{}, seen: map[string]struct{}{}}
}

func (kv *keyValues) add(value string) {
	if !isRealValue(value) {
		return
	}
	lower := strings.ToLower(value)
	if _, ok := kv.lookup[lower]; !ok {
		kv.lookup[lower] = value
	}
	if _, ok := kv.seen[value]; ok {
		return
	}
	kv.seen[value] = struct{}{}
	kv.candidates = append(kv.candidates, value)
}

var collator = collate.New(language.English, collate.IgnoreCase)

// isRealValue rejects empty values plus the literal "null"/"undefined"
// markers that leak out of older, un-normalized catalogue dumps.
func isRealValue(v string) bool {
	return v != "" && v != "null" && v != "undefined"
}

// NewIndex derives the facet candidates from the normalized record set.
// Team and map candidates are the distinct raw field values. Player
// candidates come from the derived title tokens: counted per lower-cased
// key, stopwords ignored, kept at PlayerMinCount occurrences or more, shown
// in their first-seen casing.
func NewIndex(videos []types.Video) *Index {
	teams := newKeyValues()
	maps := newKeyValues()
	idx := &Index{playerLookup: map[string]string{}}

	counts := map[string]int{}
	firstSeen := map[string]string{}

	for _, v := range videos {
		teams.add(v.Team)
		maps.add(v.Map)

		key := v.TokenLower
		if key == "" || IsStopword(key) {
			continue
		}
		if _, ok := firstSeen[key]; !ok {
			firstSeen[key] = v.TokenDisplay
		}
		counts[key]++
	}

	for key, n := range counts {
		if n < PlayerMinCount {
			continue
		}
		display := firstSeen[key]
		idx.Players = append(idx.Players, display)
		idx.playerLookup[strings.ToLower(display)] = key
	}

	idx.Teams = teams.candidates
	idx.teamLookup = teams.lookup
	idx.Maps = maps.candidates
	idx.mapLookup = maps.lookup

	collator.SortStrings(idx.Teams)
	collator.SortStrings(idx.Maps)
	collator.SortStrings(idx.Players)
	return idx
}

// ResolveTeam matches a query case-insensitively against the team
// candidates. A miss means the query places no constraint on the facet.
func (idx *Index) ResolveTeam(query string) (string, bool) {
	v, ok := idx.teamLookup[strings.ToLower(query)]
	return v, ok
}

func (idx *Index) ResolveMap(query string) (string, bool) {
	v, ok := idx.mapLookup[strings.ToLower(query)]
	return v, ok
}

// ResolvePlayer matches a query case-insensitively against the player
// candidate display forms and returns the canonical token key.
func (idx *Index) ResolvePlayer(query string) (string, bool) {
	key, ok := idx.playerLookup[strings.ToLower(query)]
	return key, ok
}

// PlayerKeys returns the display form to canonical key lookup for the
// presentation layer.
func (idx *Index) PlayerKeys() map[string]string {
	ret := make(map[string]string, len(idx.Players))
	for _, display := range idx.Players {
		ret[display] = idx.playerLookup[strings.ToLower(display)]
	}
	return ret
}
