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

package job

const (
	// DefaultResultsExpireIn is the lifetime of task results in seconds.
	DefaultResultsExpireIn = 86400

	DefaultRedisMaxIdle        = 70
	DefaultRedisIdleTimeout    = 240
	DefaultRedisReadTimeout    = 15
	DefaultRedisWriteTimeout   = 15
	DefaultRedisConnectTimeout = 15
)

const (
	// EdaJob runs missing value strategies and computes the EDA summary.
	EdaJob = "eda"

	// TrainJob trains one algorithm.
	TrainJob = "train"

	// HypothesisJob infers the problem type of a target.
	HypothesisJob = "hypothesis"

	// FlowJob executes an ingestion flow.
	FlowJob = "udd_flow"
)
