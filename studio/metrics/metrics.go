/*
 *     Copyright 2024 The Dragonfly Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"d7y.io/studio/studio/config"
	"d7y.io/studio/version"
)

const (
	// Namespace is the namespace of studio metrics.
	Namespace = "studio"

	// Subsystem is the subsystem of the studio server.
	Subsystem = "server"
)

// Variables declared for metrics.
var (
	ProjectCreatedCount = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: Subsystem,
		Name:      "project_created_total",
		Help:      "Counter of the number of the created projects.",
	})

	UploadCount = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: Subsystem,
		Name:      "upload_total",
		Help:      "Counter of the number of the uploaded datasets.",
	})

	UploadFailureCount = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: Subsystem,
		Name:      "upload_failure_total",
		Help:      "Counter of the number of failed of the uploaded datasets.",
	})

	EdaStartedCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: Subsystem,
		Name:      "eda_started_total",
		Help:      "Counter of the number of the started EDA.",
	}, []string{"mode"})

	EdaFinishedCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: Subsystem,
		Name:      "eda_finished_total",
		Help:      "Counter of the number of the finished EDA.",
	}, []string{"status"})

	TrainingStartedCount = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: Subsystem,
		Name:      "training_started_total",
		Help:      "Counter of the number of the started training.",
	})

	ModelFinishedCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: Subsystem,
		Name:      "model_finished_total",
		Help:      "Counter of the number of the finished algorithms.",
	}, []string{"algorithm", "status"})

	NotificationCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: Subsystem,
		Name:      "notification_total",
		Help:      "Counter of the number of the published notifications.",
	}, []string{"event"})

	NotificationDroppedCount = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: Subsystem,
		Name:      "notification_dropped_total",
		Help:      "Counter of the number of the clients dropped for being slow.",
	})

	SocketClientGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: Namespace,
		Subsystem: Subsystem,
		Name:      "socket_clients",
		Help:      "Gauge of the number of the connected socket clients.",
	})

	VersionGauge = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: Namespace,
		Subsystem: Subsystem,
		Name:      "version",
		Help:      "Version info of the service.",
	}, []string{"major", "minor", "git_version", "git_commit", "platform", "build_time", "go_version"})
)

func New(cfg *config.MetricsConfig) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	VersionGauge.WithLabelValues(version.Major, version.Minor, version.GitVersion, version.GitCommit, version.Platform, version.BuildTime, version.GoVersion).Set(1)
	return &http.Server{
		Addr:    cfg.Addr,
		Handler: mux,
	}
}
