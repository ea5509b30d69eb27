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

package models

import (
	"time"

	"gorm.io/datatypes"

	"d7y.io/studio/internal/catalog"
	"d7y.io/studio/pkg/types"
)

// TrainingRun is one training attempt over several algorithms.
type TrainingRun struct {
	BaseModel
	ProjectID          uint                                         `gorm:"column:project_id;index;not null;comment:project id" json:"projectId"`
	Project            Project                                      `json:"-"`
	EdaRunID           uint                                         `gorm:"column:eda_run_id;comment:eda run id" json:"edaId"`
	Status             string                                       `gorm:"column:status;type:varchar(32);not null;comment:attempt status" json:"status"`
	DepVariable        string                                       `gorm:"column:dep_variable;type:varchar(256);not null;comment:target" json:"depVariable"`
	IndepVariable      Array                                        `gorm:"column:indep_variable;not null;comment:features" json:"indepVariable"`
	Algorithms         Array                                        `gorm:"column:algorithms;not null;comment:algorithm ids" json:"algorithms"`
	ValidationStrategy datatypes.JSONType[types.ValidationStrategy] `gorm:"column:validation_strategy;comment:validation strategy" json:"validationStrategy"`
	HptPreference      datatypes.JSONSlice[catalog.Preference]      `gorm:"column:hpt_preference;comment:hyperparameters by algorithm" json:"hptPreference"`
	FeatureScaling     string                                       `gorm:"column:feature_scaling;type:varchar(32);default:'none';comment:feature scaling" json:"featureScaling"`
	Results            datatypes.JSONSlice[ModelResult]             `gorm:"column:results;comment:outcome by algorithm" json:"results"`
}

// ModelResult is the outcome of one algorithm.
type ModelResult struct {
	AlgoID        string         `json:"algoId"`
	AlgoName      string         `json:"algoName"`
	ProjectStatus string         `json:"projectStatus"`
	Error         string         `json:"error,omitempty"`
	ModelMetaData map[string]any `json:"modelMetaData,omitempty"`
	ReportedAt    time.Time      `json:"reportedAt"`
}

// Record stores result, replacing an earlier report of the same algorithm.
// It returns false for a replacement.
func (t *TrainingRun) Record(result ModelResult) bool {
	for i := range t.Results {
		if t.Results[i].AlgoID == result.AlgoID {
			t.Results[i] = result
			return false
		}
	}

	t.Results = append(t.Results, result)
	return true
}

// Has reports whether the algorithm with id has an outcome.
func (t *TrainingRun) Has(id string) bool {
	for _, result := range t.Results {
		if result.AlgoID == id {
			return true
		}
	}

	return false
}

// Reported reports whether every requested algorithm has an outcome.
func (t *TrainingRun) Reported() bool {
	for _, id := range t.Algorithms {
		if !t.Has(id) {
			return false
		}
	}

	return true
}

// Succeeded counts the algorithms that produced a model.
func (t *TrainingRun) Succeeded(status string) int {
	var n int
	for _, result := range t.Results {
		if result.ProjectStatus == status {
			n++
		}
	}

	return n
}
