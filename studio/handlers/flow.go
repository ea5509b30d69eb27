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

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"d7y.io/studio/studio/service"
	"d7y.io/studio/studio/types"
)

// @Summary Create Flow
// @Description Create by json config
// @Tags Flow
// @Accept json
// @Produce json
// @Param Flow body types.CreateFlowRequest true "Flow"
// @Success 200 {object} models.Flow
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /udd [post]
func (h *Handlers) CreateFlow(ctx *gin.Context) {
	var json types.CreateFlowRequest
	if err := ctx.ShouldBindJSON(&json); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	flow, err := h.service.CreateFlow(ctx.Request.Context(), json)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, flow)
}

// @Summary Destroy Flow
// @Description Destroy by id
// @Tags Flow
// @Accept json
// @Produce json
// @Param uddId path string true "uddId"
// @Success 200
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /udd/{uddId} [delete]
func (h *Handlers) DestroyFlow(ctx *gin.Context) {
	var params types.FlowParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	if err := h.service.DestroyFlow(ctx.Request.Context(), params.UddID); err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.Status(http.StatusOK)
}

// @Summary Update Flow
// @Description Update by json config
// @Tags Flow
// @Accept json
// @Produce json
// @Param uddId path string true "uddId"
// @Param Flow body types.UpdateFlowRequest true "Flow"
// @Success 200 {object} models.Flow
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /udd/{uddId} [put]
func (h *Handlers) UpdateFlow(ctx *gin.Context) {
	var params types.FlowParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	var json types.UpdateFlowRequest
	if err := ctx.ShouldBindJSON(&json); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	flow, err := h.service.UpdateFlow(ctx.Request.Context(), params.UddID, json)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, flow)
}

// @Summary Get Flow
// @Description Get Flow by id
// @Tags Flow
// @Accept json
// @Produce json
// @Param uddId path string true "uddId"
// @Success 200 {object} models.Flow
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /udd/{uddId} [get]
func (h *Handlers) GetFlow(ctx *gin.Context) {
	var params types.FlowParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	flow, err := h.service.GetFlow(ctx.Request.Context(), params.UddID)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, flow)
}

// @Summary Get Flows
// @Description Get Flows
// @Tags Flow
// @Accept json
// @Produce json
// @Param page query int true "current page" default(0)
// @Param per_page query int true "return max item count, default 10, max 50" default(10) minimum(2) maximum(50)
// @Success 200 {object} []models.Flow
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /udd [get]
func (h *Handlers) GetFlows(ctx *gin.Context) {
	var query types.GetFlowsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	h.setPaginationDefault(&query.Page, &query.PerPage)
	flows, count, err := h.service.GetFlows(ctx.Request.Context(), query)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	h.setPaginationLinkHeader(ctx, query.Page, query.PerPage, int(count))
	ctx.JSON(http.StatusOK, flows)
}

// @Summary Execute Flow
// @Description Run a flow to produce the dataset of a project
// @Tags Flow
// @Accept json
// @Produce json
// @Param projectId path string true "projectId"
// @Param uddId path string true "uddId"
// @Success 200 {object} service.UploadResult
// @Failure 400
// @Failure 404
// @Failure 409
// @Failure 500
// @Failure 503
// @Router /project/{projectId}/udd/{uddId}/execute [get]
func (h *Handlers) ExecuteFlow(ctx *gin.Context) {
	var params types.ExecuteFlowParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	project, err := h.service.ExecuteFlow(ctx.Request.Context(), params.ProjectID, params.UddID)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, service.UploadResult{
		Status:         types.UploadStatusFlowStart,
		ProjectDetails: project,
	})
}

// @Summary Report Flow
// @Description Called by the flow runner when a flow ends
// @Tags Flow
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Param Flow body types.FlowReportRequest true "Flow"
// @Success 200
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /projects/{id}/udd/report [post]
func (h *Handlers) ReportFlow(ctx *gin.Context) {
	var params types.ProjectParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	var json types.FlowReportRequest
	if err := ctx.ShouldBindJSON(&json); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	if err := h.service.ReportFlow(ctx.Request.Context(), params.ID, json); err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.Status(http.StatusOK)
}
