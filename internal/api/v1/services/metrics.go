package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Upload results.
const (
	resultSuccess  = "success"
	resultRejected = "rejected"
	resultFailed   = "failed"
)

var (
	uploadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "whisper_vault",
		Name:      "uploads_total",
		Help:      "Audio uploads by result.",
	}, []string{"result"})

	pipelineFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "whisper_vault",
		Name:      "pipeline_failures_total",
		Help:      "Upload pipeline failures by step.",
	}, []string{"step"})

	transcriptionSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "whisper_vault",
		Name:      "transcription_duration_seconds",
		Help:      "Time spent in the transcription provider.",
		Buckets:   prometheus.ExponentialBuckets(0.5, 2, 10),
	})

	archivesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "whisper_vault",
		Name:      "archives_total",
		Help:      "Transcription archive downloads by result.",
	}, []string{"result"})
)
