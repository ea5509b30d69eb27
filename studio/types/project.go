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

type ProjectParams struct {
	ID uint `uri:"id" binding:"required"`
}

type CreateProjectRequest struct {
	Name         string `json:"name" binding:"required"`
	FileEncoding string `json:"fileEncoding" binding:"omitempty"`
	FlowID       *uint  `json:"flowId" binding:"omitempty"`
}

type UpdateProjectRequest struct {
	Name         string `json:"name" binding:"omitempty"`
	FileEncoding string `json:"fileEncoding" binding:"omitempty"`
	FlowID       *uint  `json:"flowId" binding:"omitempty"`
}

type GetProjectsQuery struct {
	Name          string `form:"name" binding:"omitempty"`
	ProjectStatus string `form:"projectStatus" binding:"omitempty"`
	Page          int    `form:"page" binding:"omitempty,gte=1"`
	PerPage       int    `form:"per_page" binding:"omitempty,gte=1,lte=50"`
}

// UploadStatus values of an upload response.
const (
	UploadStatusUploaded  = "uploaded"
	UploadStatusFlowStart = "flow_start"
	ReadStatusRead        = "read"
)

type SocketQuery struct {
	ProjectIDs []uint `form:"projectId" binding:"omitempty,dive,gte=1"`
}
