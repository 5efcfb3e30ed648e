package types

import "strings"

// RawVideo is the shape of one catalogue entry as published by the upstream
// pipeline. Fields are decoded loosely because the source data is noisy:
// any of them may be missing, null or carry a non-string value.
type RawVideo struct {
	Id        any `json:"id"`
	Title     any `json:"title"`
	Team      any `json:"team"`
	Map       any `json:"map"`
	Player    any `json:"player"`
	Channel   any `json:"channel"`
	Published any `json:"published"`
}

// Video is a normalized catalogue entry. Every field is a defined string,
// absence is always the empty string. TokenLower/TokenDisplay hold the
// derived title token and are computed once, at normalization.
type Video struct {
	Id        string `json:"id"`
	Title     string `json:"title"`
	Team      string `json:"team"`
	Map       string `json:"map"`
	Player    string `json:"player"`
	Channel   string `json:"channel"`
	Published string `json:"published"`

	TokenLower   string `json:"-"`
	TokenDisplay string `json:"-"`
}

func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// Normalize coerces every raw field to a defined string and derives the
// title token. String values are kept verbatim, no trimming or case folding.
func Normalize(raw RawVideo) Video {
	v := Video{
		Id:        asString(raw.Id),
		Title:     asString(raw.Title),
		Team:      asString(raw.Team),
		Map:       asString(raw.Map),
		Player:    asString(raw.Player),
		Channel:   asString(raw.Channel),
		Published: asString(raw.Published),
	}
	v.TokenLower, v.TokenDisplay = TitleToken(v.Title)
	return v
}

// NormalizeVideo re-derives the title token of an already-string-typed
// record. Running it on a normalized record is a no-op.
func NormalizeVideo(v Video) Video {
	v.TokenLower, v.TokenDisplay = TitleToken(v.Title)
	return v
}

func isTokenRune(r rune) bool {
	return r == '_' || r == '-' ||
		(r >= '0' && r <= '9') ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z')
}

// TitleToken extracts the first maximal run of [A-Za-z0-9_-] from a title.
// The lower-cased form is the canonical key, display keeps the original
// casing. Both are empty when the title has no such run.
func TitleToken(title string) (lower string, display string) {
	start := -1
	for i, r := range title {
		if isTokenRune(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			display = title[start:i]
			return strings.ToLower(display), display
		}
	}
	if start >= 0 {
		display = title[start:]
		return strings.ToLower(display), display
	}
	return "", ""
}
