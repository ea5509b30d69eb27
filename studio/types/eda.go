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

package types

import (
	"encoding/json"

	"d7y.io/studio/internal/lifecycle"
	pkgtypes "d7y.io/studio/pkg/types"
)

type EdaParams struct {
	EdaID uint `uri:"edaId" binding:"required"`
}

type StartEdaRequest struct {
	EdaMode           string                     `json:"edaMode" binding:"required,edamode"`
	Strategies        []pkgtypes.FeatureStrategy `json:"strategies" binding:"omitempty,dive"`
	CustomEdaStrategy map[string]string          `json:"customEdaStrategy" binding:"omitempty"`
}

type EdaProgressResponse struct {
	Stages []lifecycle.Stage `json:"stages"`
}

type EdaProgressRequest struct {
	StageTitle string `json:"stageTitle" binding:"required"`
	Status     bool   `json:"status"`
}

// ReportProjectRequest is sent by the compute worker when an EDA attempt
// ends.
type ReportProjectRequest struct {
	ProjectStatus        string                `json:"projectStatus" binding:"required"`
	Error                string                `json:"error" binding:"omitempty"`
	EdaSummary           []pkgtypes.SummaryRow `json:"edaSummary" binding:"omitempty"`
	AfterEdaDataFilePath string                `json:"afterEdaDataFilePath" binding:"omitempty"`
	CorrectedData        json.RawMessage       `json:"correctedData" binding:"omitempty"`
	TargetFeatures       []string              `json:"targetFeatures" binding:"omitempty"`
	ProblemType          string                `json:"problemType" binding:"omitempty"`
	DatetimeColumnName   string                `json:"datetimeColumnName" binding:"omitempty"`
	CategoricalColNames  []string              `json:"categoricalColNames" binding:"omitempty"`
}

type MultiUnivariateQuery struct {
	Target bool `form:"target" binding:"omitempty"`
}
