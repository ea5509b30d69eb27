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

package config

import (
	"time"
)

const (
	// DefaultServerPort is the port of the REST API.
	DefaultServerPort = 3000

	// DefaultDataDir holds uploaded datasets.
	DefaultDataDir = "/var/lib/studio"

	// DefaultLogDir holds log files.
	DefaultLogDir = "/var/log/studio"
)

const (
	// DefaultLogRotateMaxSize is the maximum size in megabytes of log files before rotation.
	DefaultLogRotateMaxSize = 1024

	// DefaultLogRotateMaxAge is the maximum number of days to retain old log files.
	DefaultLogRotateMaxAge = 7

	// DefaultLogRotateMaxBackups is the maximum number of old log files to keep.
	DefaultLogRotateMaxBackups = 20
)

const (
	// DatabaseTypeMysql is database type of mysql.
	DatabaseTypeMysql = "mysql"

	// DatabaseTypeMariaDB is database type of mariadb.
	DatabaseTypeMariaDB = "mariadb"

	// DatabaseTypePostgres is database type of postgres.
	DatabaseTypePostgres = "postgres"
)

const (
	// DefaultRedisBrokerDB is the redis db of the machinery broker.
	DefaultRedisBrokerDB = 1

	// DefaultRedisBackendDB is the redis db of the machinery result backend.
	DefaultRedisBackendDB = 2
)

const (
	// DefaultRedisCacheTTL is the redis ttl of cached projects.
	DefaultRedisCacheTTL = 5 * time.Minute

	// DefaultLFUCacheTTL is the local ttl of cached projects.
	DefaultLFUCacheTTL = 30 * time.Second

	// DefaultLFUCacheSize is the number of projects cached locally.
	DefaultLFUCacheSize = 10 * 1000

	// DefaultCacheEvictChannel is the redis channel of cache evictions.
	DefaultCacheEvictChannel = "studio:cache:evict"
)

const (
	// DefaultJobEdaTimeout bounds the supervision of an EDA job.
	DefaultJobEdaTimeout = 2 * time.Hour

	// DefaultJobTrainTimeout bounds the supervision of a training job.
	DefaultJobTrainTimeout = 12 * time.Hour

	// DefaultJobHypothesisTimeout bounds the supervision of a hypothesis job.
	DefaultJobHypothesisTimeout = 30 * time.Minute

	// DefaultJobFlowTimeout bounds the supervision of a flow job.
	DefaultJobFlowTimeout = 2 * time.Hour

	// DefaultJobPollingInitBackoff is the first polling backoff in seconds.
	DefaultJobPollingInitBackoff = 5

	// DefaultJobPollingMaxBackoff is the largest polling backoff in seconds.
	DefaultJobPollingMaxBackoff = 60
)

const (
	// DefaultComputeAddr is the HTTP address of the compute service.
	DefaultComputeAddr = "http://127.0.0.1:5000"

	// DefaultComputeTimeout is the timeout of one compute request.
	DefaultComputeTimeout = 2 * time.Minute

	// DefaultComputeRetryMax is the number of retries of a compute request.
	DefaultComputeRetryMax = 3
)

const (
	// DefaultNotificationChannel is the redis channel relaying events between replicas.
	DefaultNotificationChannel = "studio:notification"

	// DefaultNotificationWriteTimeout is the timeout of one websocket write.
	DefaultNotificationWriteTimeout = 10 * time.Second

	// DefaultNotificationPongTimeout is how long a client may stay silent.
	DefaultNotificationPongTimeout = 60 * time.Second

	// DefaultNotificationPingPeriod must be shorter than the pong timeout.
	DefaultNotificationPingPeriod = 50 * time.Second

	// DefaultNotificationMaxMessageSize is the largest client message in bytes.
	DefaultNotificationMaxMessageSize = 4096

	// DefaultNotificationSendBufferSize is the number of queued events per client.
	DefaultNotificationSendBufferSize = 64
)

const (
	// DefaultUploadMaxSize is the largest accepted dataset in bytes.
	DefaultUploadMaxSize = 1 << 30
)

// DefaultUploadAllowedExtensions are the accepted dataset extensions.
var DefaultUploadAllowedExtensions = []string{"csv", "xls", "xlsx", "zip", "pkl", "pk", "pl", "pickle"}

const (
	// DefaultMetricsAddr is the address of the metrics server.
	DefaultMetricsAddr = ":8000"
)
