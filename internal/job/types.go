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

import (
	"encoding/json"

	"d7y.io/studio/internal/catalog"
	"d7y.io/studio/pkg/types"
)

// EdaRequest defines the request parameters of an EDA task.
type EdaRequest struct {
	ProjectID         uint                    `json:"project_id"`
	EdaID             uint                    `json:"eda_id"`
	Filename          string                  `json:"filename"`
	FileEncoding      string                  `json:"file_encoding"`
	EdaMode           string                  `json:"eda_mode"`
	Strategies        []types.FeatureStrategy `json:"strategies"`
	CustomEdaStrategy map[string]string       `json:"custom_eda_strategy,omitempty"`
	CallbackURL       string                  `json:"callback_url"`
}

// TrainRequest defines the request parameters of training one algorithm.
type TrainRequest struct {
	ProjectID          uint                     `json:"project_id"`
	ModelID            uint                     `json:"model_id"`
	Filename           string                   `json:"filename"`
	DepVariable        string                   `json:"dep_variable"`
	IndepVariable      []string                 `json:"indep_variable"`
	Algorithm          catalog.Preference       `json:"algorithm"`
	ValidationStrategy types.ValidationStrategy `json:"validation_strategy"`
	FeatureScaling     string                   `json:"feature_scaling"`
	CallbackURL        string                   `json:"callback_url"`
}

// HypothesisRequest defines the request parameters of a hypothesis task.
type HypothesisRequest struct {
	ProjectID     uint     `json:"project_id"`
	Filename      string   `json:"filename"`
	FileEncoding  string   `json:"file_encoding"`
	DepVariable   string   `json:"dep_variable"`
	IndepVariable []string `json:"indep_variable"`
	CallbackURL   string   `json:"callback_url"`
}

// FlowRequest defines the request parameters of a flow execution.
type FlowRequest struct {
	ProjectID   uint            `json:"project_id"`
	FlowID      uint            `json:"flow_id"`
	FlowRef     string          `json:"flow_ref"`
	FlowType    string          `json:"flow_type,omitempty"`
	Filename    string          `json:"filename,omitempty"`
	Definition  json.RawMessage `json:"definition,omitempty"`
	CallbackURL string          `json:"callback_url"`
}
