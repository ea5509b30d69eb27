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
	"gorm.io/datatypes"

	"d7y.io/studio/internal/lifecycle"
	"d7y.io/studio/pkg/types"
)

// EdaRun is one EDA attempt of a project.
type EdaRun struct {
	BaseModel
	ProjectID            uint                                       `gorm:"column:project_id;index;not null;comment:project id" json:"projectId"`
	Project              Project                                    `json:"-"`
	Status               string                                     `gorm:"column:status;type:varchar(32);not null;comment:attempt status" json:"status"`
	EdaMode              string                                     `gorm:"column:eda_mode;type:varchar(16);not null;default:'auto';comment:auto or manual" json:"edaMode"`
	Strategies           datatypes.JSONSlice[types.FeatureStrategy] `gorm:"column:strategies;comment:missing value strategies" json:"strategies"`
	CustomEdaStrategy    JSONMap                                    `gorm:"column:custom_eda_strategy;comment:custom values by feature" json:"customEdaStrategy,omitempty"`
	EdaSummary           datatypes.JSONSlice[types.SummaryRow]      `gorm:"column:eda_summary;comment:feature statistics" json:"edaSummary"`
	AfterEdaDataFilePath string                                     `gorm:"column:after_eda_data_file_path;type:varchar(1024);comment:cleaned dataset path" json:"afterEdaDataFilePath"`
	CorrectedData        datatypes.JSON                             `gorm:"column:corrected_data;comment:cleaned preview rows" json:"correctedData,omitempty"`
	TargetFeatures       Array                                      `gorm:"column:target_features;comment:target candidates chosen by worker" json:"targetFeatures,omitempty"`
	ProblemType          string                                     `gorm:"column:problem_type;type:varchar(32);comment:problem type" json:"problemType,omitempty"`
	DatetimeColumnName   string                                     `gorm:"column:datetime_column_name;type:varchar(256);comment:datetime feature" json:"datetimeColumnName,omitempty"`
	CategoricalColNames  Array                                      `gorm:"column:categorical_col_names;comment:categorical features" json:"categoricalColNames,omitempty"`
	Stages               datatypes.JSONSlice[lifecycle.Stage]       `gorm:"column:stages;comment:progress window" json:"stages"`
	Error                string                                     `gorm:"column:error;type:varchar(1024);comment:worker error" json:"error,omitempty"`
}

// TargetList returns the target candidates of the run.
func (e *EdaRun) TargetList() []string {
	return types.TargetCandidates(e.TargetFeatures, e.EdaSummary)
}
