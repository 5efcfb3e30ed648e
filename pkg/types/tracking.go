package types

import "net/http"

type Tracking interface {
	TrackSession(sessionId string, r *http.Request)
	TrackFilter(sessionId string, query FilterQuery, page int, hits int)
}
