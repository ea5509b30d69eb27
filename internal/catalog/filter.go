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

package catalog

// CorrelationResult is the problem classification computed by the
// hypothesis task for a target and its features.
type CorrelationResult struct {
	AlgoType              Type   `json:"algoType"`
	IsImbalanced          bool   `json:"isImbalanced"`
	IsMultilabel          bool   `json:"isMultilabel"`
	TargetVarType         string `json:"targetVarType,omitempty"`
	HypothesisTestingData any    `json:"hypothesisTestingData,omitempty"`
}

// FilterAlgorithms keeps the algorithms matching the problem type of result.
// A multilabel target additionally requires multilabel support.
func FilterAlgorithms(result CorrelationResult, algorithms []Algorithm) []Algorithm {
	var filtered []Algorithm
	for _, algorithm := range algorithms {
		if algorithm.Type != result.AlgoType {
			continue
		}

		if result.IsMultilabel && !algorithm.Multilabel {
			continue
		}

		filtered = append(filtered, algorithm)
	}

	return filtered
}
