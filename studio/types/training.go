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
	"d7y.io/studio/internal/catalog"
	pkgtypes "d7y.io/studio/pkg/types"
)

type ModelParams struct {
	ID      uint `uri:"id" binding:"required"`
	ModelID uint `uri:"modelId" binding:"required"`
}

// StartTrainingRequest leaves target, features and algorithms optional so
// that missing ones are reported with their own message.
type StartTrainingRequest struct {
	DepVariable        string                       `json:"depVariable" binding:"omitempty"`
	IndepVariable      []string                     `json:"indepVariable" binding:"omitempty"`
	Algorithms         []string                     `json:"algorithms" binding:"omitempty"`
	ValidationStrategy *pkgtypes.ValidationStrategy `json:"validationStrategy" binding:"omitempty"`
	HptPreference      []catalog.Preference         `json:"hptPreference" binding:"omitempty,dive"`
	FeatureScaling     string                       `json:"featureScaling" binding:"omitempty"`
}

type CorrelationRequest struct {
	DepVariable   string   `json:"depVariable" binding:"required"`
	IndepVariable []string `json:"indepVariable" binding:"omitempty"`
}

type ModelDoneQuery struct {
	Type string `form:"type" binding:"omitempty,oneof=train"`
}

// ModelDoneRequest is the outcome of one algorithm reported by the worker.
type ModelDoneRequest struct {
	ProjectStatus string         `json:"projectStatus" binding:"required,oneof='Model Generated' 'Model Failed'"`
	AlgoID        string         `json:"algoId" binding:"omitempty"`
	AlgoName      string         `json:"algoName" binding:"omitempty"`
	Error         string         `json:"error" binding:"omitempty"`
	ModelMetaData map[string]any `json:"modelMetaData" binding:"omitempty"`
}
