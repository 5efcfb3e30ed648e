package common

import (
	"log"
	"net/http"

	"github.com/matst80/slask-vods/pkg/common/jsoncompat"
	"github.com/matst80/slask-vods/pkg/types"
)

// JsonHandler wraps a handler that produces a JSON payload, taking care of
// OPTIONS preflight, the session cookie, CORS and encoding.
func JsonHandler(trk types.Tracking, fn func(r *http.Request, sessionId string) (any, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			RespondToOptions(w, r)
			return
		}
		sessionId := HandleSessionCookie(trk, w, r)

		payload, err := fn(r, sessionId)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		data, err := jsoncompat.Marshal(payload)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "public, stale-while-revalidate=120")
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Age", "0")
		w.WriteHeader(http.StatusOK)
		if _, err = w.Write(data); err != nil {
			log.Printf("Error writing response: %v", err)
		}
	}
}

func RespondToOptions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "public, max-age=3600")
	origin := r.Header.Get("Origin")
	if origin != "" {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Max-Age", "86400")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
	}
	w.Header().Set("Age", "0")
	w.WriteHeader(http.StatusAccepted)
}
