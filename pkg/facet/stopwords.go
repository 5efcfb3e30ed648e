package facet

// Stopwords holds lower-cased tokens that must never become player
// candidates: generic POV-title words, connectives and the current map pool.
// Map names lead a fair share of titles ("Mirage highlights ...") and would
// otherwise dominate the player facet.
var Stopwords = map[string]struct{}{
	// generic title words
	"pov":        {},
	"demo":       {},
	"demos":      {},
	"highlight":  {},
	"highlights": {},
	"clutch":     {},
	"ace":        {},
	"full":       {},
	"best":       {},
	"new":        {},
	"pro":        {},
	"match":      {},
	"ranked":     {},
	"faceit":     {},
	"csgo":       {},
	"cs2":        {},
	"cs":         {},
	// connectives
	"vs":   {},
	"the":  {},
	"and":  {},
	"with": {},
	"on":   {},
	"in":   {},
	"of":   {},
	"ft":   {},
	// map pool
	"mirage":   {},
	"inferno":  {},
	"nuke":     {},
	"ancient":  {},
	"anubis":   {},
	"vertigo":  {},
	"overpass": {},
	"dust2":    {},
}

// IsStopword reports whether a lower-cased token is suppressed.
func IsStopword(token string) bool {
	_, ok := Stopwords[token]
	return ok
}
