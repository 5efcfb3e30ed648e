package loader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/matst80/slask-vods/pkg/common/jsoncompat"
	"github.com/matst80/slask-vods/pkg/types"
)

// The loader is the single boundary that supplies the raw record sequence.
// It runs once per process; a failure here is fatal to the session and is
// reported to the caller, never retried.

var httpClient = &http.Client{Timeout: 30 * time.Second}

// FromFile reads a catalogue dump (the upstream data/videos.json layout,
// newest first) and returns the normalized records in file order.
func FromFile(path string) ([]types.Video, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalogue %s: %w", path, err)
	}
	return decode(data)
}

// FromURL fetches the catalogue over HTTP.
func FromURL(ctx context.Context, url string) ([]types.Video, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	res, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching catalogue: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching catalogue: unexpected status %d", res.StatusCode)
	}
	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	return decode(data)
}

func decode(data []byte) ([]types.Video, error) {
	var raw []types.RawVideo
	if err := jsoncompat.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding catalogue: %w", err)
	}
	videos := make([]types.Video, len(raw))
	for i, r := range raw {
		videos[i] = types.Normalize(r)
	}
	return videos, nil
}
