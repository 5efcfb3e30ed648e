package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"net/http/pprof"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/matst80/slask-vods/pkg/common"
	"github.com/matst80/slask-vods/pkg/facet"
	"github.com/matst80/slask-vods/pkg/loader"
	"github.com/matst80/slask-vods/pkg/server"
	"github.com/matst80/slask-vods/pkg/storage"
	"github.com/matst80/slask-vods/pkg/tracking"
	"github.com/matst80/slask-vods/pkg/types"
)

var enableProfiling = flag.Bool("profiling", false, "enable profiling endpoints")
var sourceUrl = os.Getenv("VIDEO_SOURCE_URL")
var sourceFile = os.Getenv("VIDEO_SOURCE_FILE")
var rabbitUrl = os.Getenv("RABBIT_URL")
var redisUrl = os.Getenv("REDIS_URL")
var redisPassword = os.Getenv("REDIS_PASSWORD")
var listenAddress = ":8080"
var debugAddress = ":8081"

func dataDir() string {
	if dir := os.Getenv("VIDEO_DATA_DIR"); dir != "" {
		return dir
	}
	return "data"
}

// loadCatalogue supplies the record sequence exactly once: remote source
// when configured (snapshotted to disk on success), else a local file, else
// the previous snapshot.
func loadCatalogue(db *storage.DiskStorage) ([]types.Video, error) {
	if sourceUrl != "" {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		videos, err := loader.FromURL(ctx, sourceUrl)
		if err != nil {
			return nil, err
		}
		if err := db.SaveCatalogue(videos); err != nil {
			log.Printf("Failed to save catalogue snapshot: %v", err)
		}
		return videos, nil
	}
	if sourceFile != "" {
		return loader.FromFile(sourceFile)
	}
	return db.LoadCatalogue()
}

func main() {
	flag.Parse()

	db := storage.NewDiskStorage(dataDir())
	videos, err := loadCatalogue(db)
	if err != nil {
		log.Fatalf("Failed to load catalogue: %v", err)
	}
	log.Printf("Catalogue loaded, %d videos", len(videos))

	facets := facet.NewIndex(videos)
	log.Printf("Facets ready: %d teams, %d maps, %d players", len(facets.Teams), len(facets.Maps), len(facets.Players))

	srv := &server.WebServer{
		Videos: videos,
		Facets: facets,
		Policy: types.ExactWithSubstringFallback,
	}

	if rabbitUrl != "" {
		trk, err := tracking.NewRabbitTracking(rabbitUrl)
		if err != nil {
			log.Fatalf("Failed to connect tracking: %v", err)
		}
		defer trk.Close()
		srv.Tracking = trk
		log.Println("Tracking enabled")
	}
	if redisUrl != "" {
		srv.Cache = server.NewCache(redisUrl, redisPassword, 0)
		log.Printf("Response cache enabled, url: %s", redisUrl)
	}

	go func() {
		debugMux := http.NewServeMux()
		debugMux.Handle("/metrics", promhttp.Handler())
		if enableProfiling != nil && *enableProfiling {
			log.Println("Profiling enabled")
			debugMux.HandleFunc("/debug/pprof/", pprof.Index)
			debugMux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
			debugMux.HandleFunc("/debug/pprof/profile", pprof.Profile)
			debugMux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
			debugMux.HandleFunc("/debug/pprof/trace", pprof.Trace)
		}
		log.Printf("Starting debug server %v", debugAddress)
		log.Fatal(http.ListenAndServe(debugAddress, debugMux))
	}()

	mux := http.NewServeMux()
	mux.Handle("/api/", http.StripPrefix("/api", srv.ClientHandler()))
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	httpServer := &http.Server{
		Addr:              listenAddress,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	common.RunServerWithShutdown(httpServer, "slask-vods api", 15*time.Second, func(ctx context.Context) error {
		return db.SaveCatalogue(videos)
	})
}
