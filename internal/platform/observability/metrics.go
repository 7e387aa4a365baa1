package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PipelineRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "strykr_pipeline_runs_total",
		Help: "The total number of pipeline runs by terminal outcome",
	}, []string{"outcome"})

	PipelineRunDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "strykr_pipeline_run_duration_seconds",
		Help:    "Duration in seconds of a full pipeline run",
		Buckets: []float64{1, 2, 5, 10, 20, 30, 60, 120, 300},
	})

	PostsFetched = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "strykr_posts_fetched_total",
		Help: "The total number of posts fetched by source",
	}, []string{"source"})

	PostFetchErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "strykr_post_fetch_errors_total",
		Help: "The total number of post source fetch failures",
	}, []string{"source"})

	ThemesScored = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "strykr_themes_scored_total",
		Help: "The total number of candidate themes produced by category",
	}, []string{"category"})

	FallbackClassifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "strykr_fallback_classifications_total",
		Help: "The total number of fallback classifier invocations by result",
	}, []string{"result"})

	DedupChecks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "strykr_dedup_checks_total",
		Help: "The total number of dedup window checks by result",
	}, []string{"result"})

	HistoryStoreErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "strykr_history_store_errors_total",
		Help: "The total number of history store failures by operation",
	}, []string{"operation"})

	LLMRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "strykr_llm_request_duration_seconds",
		Help:    "Duration of LLM requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"model", "task"})

	LLMRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "strykr_llm_requests_total",
		Help: "Total number of LLM requests",
	}, []string{"model", "task", "status"})

	InsightConfidence = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "strykr_insight_confidence",
		Help:    "Distribution of confidence scores returned by the insight service",
		Buckets: []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0},
	})

	Publishes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "strykr_publishes_total",
		Help: "Total number of publish attempts by surface and status",
	}, []string{"surface", "status"})
)
