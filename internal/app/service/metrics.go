package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	tasksCreatedCount = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "taskhub_tasks_created_total",
			Help: "Total number of tasks created",
		},
	)

	tasksUpdatedCount = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "taskhub_tasks_updated_total",
			Help: "Total number of tasks updated",
		},
	)

	tasksDeletedCount = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "taskhub_tasks_deleted_total",
			Help: "Total number of tasks deleted",
		},
	)

	listTasksDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "taskhub_list_tasks_duration_seconds",
			Help:    "Duration of the list operation in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)
