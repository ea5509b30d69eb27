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
)

type FlowParams struct {
	UddID uint `uri:"uddId" binding:"required"`
}

type ExecuteFlowParams struct {
	ProjectID uint `uri:"projectId" binding:"required"`
	UddID     uint `uri:"uddId" binding:"required"`
}

type CreateFlowRequest struct {
	FlowName   string          `json:"flowName" binding:"required"`
	FlowID     string          `json:"flowId" binding:"required"`
	FlowType   string          `json:"flowType" binding:"omitempty"`
	Definition json.RawMessage `json:"definition" binding:"omitempty"`
}

type UpdateFlowRequest struct {
	FlowName   string          `json:"flowName" binding:"omitempty"`
	FlowID     string          `json:"flowId" binding:"omitempty"`
	FlowType   string          `json:"flowType" binding:"omitempty"`
	Definition json.RawMessage `json:"definition" binding:"omitempty"`
}

type GetFlowsQuery struct {
	Name    string `form:"name" binding:"omitempty"`
	Page    int    `form:"page" binding:"omitempty,gte=1"`
	PerPage int    `form:"per_page" binding:"omitempty,gte=1,lte=50"`
}

// FlowReportRequest is sent by the flow runner when a flow ends.
type FlowReportRequest struct {
	Status string `json:"status" binding:"required,oneof=complted flow_failed"`
	File   string `json:"file" binding:"omitempty"`
	ErrMsg string `json:"err_msg" binding:"omitempty"`
}
