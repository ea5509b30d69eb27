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
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-http-utils/headers"

	"d7y.io/studio/studio/compute"
	"d7y.io/studio/studio/models"
	"d7y.io/studio/studio/storage"
	"d7y.io/studio/studio/types"
)

const htmlContentType = "text/html; charset=utf-8"

// @Summary Start EDA
// @Description Start an EDA attempt of the uploaded dataset
// @Tags EDA
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Param EDA body types.StartEdaRequest true "EDA"
// @Success 200 {object} []models.EdaRun
// @Failure 400
// @Failure 404
// @Failure 409
// @Failure 500
// @Failure 503
// @Router /projects/{id}/eda [post]
func (h *Handlers) StartEda(ctx *gin.Context) {
	var params types.ProjectParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	var json types.StartEdaRequest
	if err := ctx.ShouldBindJSON(&json); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	eda, err := h.service.StartEda(ctx.Request.Context(), params.ID, json)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, []*models.EdaRun{eda})
}

// @Summary Get EDAs
// @Description Get the EDA attempts of a project, latest first
// @Tags EDA
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Success 200 {object} []service.EdaResult
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /projects/{id}/eda [get]
func (h *Handlers) GetEdas(ctx *gin.Context) {
	var params types.ProjectParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	edas, err := h.service.GetEdas(ctx.Request.Context(), params.ID)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, edas)
}

// @Summary Get EDA Progress
// @Description Get the stage window of the latest EDA
// @Tags EDA
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Success 200 {object} []types.EdaProgressResponse
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /projects/{id}/edaprogress [get]
func (h *Handlers) GetEdaProgress(ctx *gin.Context) {
	var params types.ProjectParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	stages, err := h.service.GetEdaProgress(ctx.Request.Context(), params.ID)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, []types.EdaProgressResponse{{Stages: stages}})
}

// @Summary Report EDA Progress
// @Description Called by the compute worker when an EDA stage changes
// @Tags EDA
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Param Stage body types.EdaProgressRequest true "Stage"
// @Success 200
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /projects/{id}/edaprogress [post]
func (h *Handlers) ReportEdaProgress(ctx *gin.Context) {
	var params types.ProjectParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	var json types.EdaProgressRequest
	if err := ctx.ShouldBindJSON(&json); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	if err := h.service.ReportEdaProgress(ctx.Request.Context(), params.ID, json); err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.Status(http.StatusOK)
}

// @Summary Report Project
// @Description Called by the compute worker when an EDA attempt ends
// @Tags EDA
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Param Report body types.ReportProjectRequest true "Report"
// @Success 200
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /projects/{id}/report [post]
func (h *Handlers) ReportProject(ctx *gin.Context) {
	var params types.ProjectParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	var json types.ReportProjectRequest
	if err := ctx.ShouldBindJSON(&json); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	if err := h.service.ReportProject(ctx.Request.Context(), params.ID, json); err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.Status(http.StatusOK)
}

// @Summary EDA Graph
// @Description Render the distribution of one feature
// @Tags EDA
// @Accept json
// @Produce html
// @Param id path string true "id"
// @Param Graph body compute.EdaGraphRequest true "Graph"
// @Success 200
// @Failure 400
// @Failure 404
// @Failure 500
// @Failure 503
// @Router /projects/{id}/eda/edagraph [post]
func (h *Handlers) EdaGraph(ctx *gin.Context) {
	var params types.ProjectParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	var json compute.EdaGraphRequest
	if err := ctx.ShouldBindJSON(&json); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	html, err := h.service.EdaGraph(ctx.Request.Context(), params.ID, json)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.Data(http.StatusOK, htmlContentType, []byte(html))
}

// @Summary Advanced EDA Info
// @Description Render the advanced EDA report of the latest EDA
// @Tags EDA
// @Accept json
// @Produce html
// @Param id path string true "id"
// @Success 200
// @Failure 400
// @Failure 404
// @Failure 500
// @Failure 503
// @Router /projects/{id}/eda/advedainfo [get]
func (h *Handlers) AdvancedEdaInfo(ctx *gin.Context) {
	var params types.ProjectParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	html, err := h.service.AdvancedEdaInfo(ctx.Request.Context(), params.ID)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.Data(http.StatusOK, htmlContentType, []byte(html))
}

// @Summary Multi Univariate
// @Description Render an analysis of the selected features
// @Tags EDA
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Param target query bool false "analyse against the target"
// @Param Report body compute.MultiUnivariateRequest true "Report"
// @Success 200
// @Failure 400
// @Failure 404
// @Failure 500
// @Failure 503
// @Router /projects/{id}/report/trainmodel/multiunivariate [post]
func (h *Handlers) MultiUnivariate(ctx *gin.Context) {
	var params types.ProjectParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	var query types.MultiUnivariateQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	var json compute.MultiUnivariateRequest
	if err := ctx.ShouldBindJSON(&json); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}
	json.Target = json.Target || query.Target

	report, err := h.service.MultiUnivariate(ctx.Request.Context(), params.ID, json)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": report})
}

// @Summary Get EDA
// @Description Get EDA by id
// @Tags EDA
// @Accept json
// @Produce json
// @Param edaId path string true "edaId"
// @Success 200 {object} service.EdaResult
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /eda/{edaId}/info [get]
func (h *Handlers) GetEda(ctx *gin.Context) {
	var params types.EdaParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	eda, err := h.service.GetEda(ctx.Request.Context(), params.EdaID)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, eda)
}

// @Summary Download EDA Summary
// @Description Download the EDA summary as csv
// @Tags EDA
// @Produce text/csv
// @Param edaId path string true "edaId"
// @Success 200
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /eda/{edaId}/edaSummary/download [get]
func (h *Handlers) DownloadEdaSummary(ctx *gin.Context) {
	var params types.EdaParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	rows, err := h.service.GetEdaSummary(ctx.Request.Context(), params.EdaID)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	var buf bytes.Buffer
	if err := storage.WriteSummary(&buf, rows); err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.Header(headers.ContentDisposition, fmt.Sprintf("attachment; filename=\"eda_summary_%d.csv\"", params.EdaID))
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
