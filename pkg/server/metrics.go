package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	viewRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slask_vods_view_requests_total",
		Help: "Number of video view recomputations served",
	})
	emptyViews = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slask_vods_empty_views_total",
		Help: "Number of views that matched no videos",
	})
	facetRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slask_vods_facet_requests_total",
		Help: "Number of facet list requests served",
	})
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slask_vods_view_cache_hits_total",
		Help: "Number of view responses served from the cache",
	})
)
