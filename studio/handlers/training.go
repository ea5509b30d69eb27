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

	"d7y.io/studio/internal/catalog"
	"d7y.io/studio/studio/types"
)

// @Summary Start Training
// @Description Start training the selected algorithms on the latest EDA
// @Tags Training
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Param Training body types.StartTrainingRequest true "Training"
// @Success 200 {object} models.TrainingRun
// @Failure 400
// @Failure 404
// @Failure 409
// @Failure 500
// @Failure 503
// @Router /projects/{id}/trainmodel [post]
func (h *Handlers) StartTraining(ctx *gin.Context) {
	var params types.ProjectParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	var json types.StartTrainingRequest
	if err := ctx.ShouldBindJSON(&json); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	run, err := h.service.StartTraining(ctx.Request.Context(), params.ID, json)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, run)
}

// @Summary List Models
// @Description List the training runs of a project, latest first
// @Tags Training
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Success 200 {object} []models.TrainingRun
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /projects/{id}/trainmodel [get]
func (h *Handlers) ListModels(ctx *gin.Context) {
	var params types.ProjectParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	runs, err := h.service.ListModels(ctx.Request.Context(), params.ID)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, runs)
}

// @Summary Get Correlation
// @Description Dispatch the hypothesis test of target and features, the result is emitted as hypothisisTest
// @Tags Training
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Param Correlation body types.CorrelationRequest true "Correlation"
// @Success 200 {object} models.Job
// @Failure 400
// @Failure 404
// @Failure 500
// @Failure 503
// @Router /projects/{id}/trainmodel/correlation [post]
func (h *Handlers) GetCorrelation(ctx *gin.Context) {
	var params types.ProjectParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	var json types.CorrelationRequest
	if err := ctx.ShouldBindJSON(&json); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	job, err := h.service.GetCorrelation(ctx.Request.Context(), params.ID, json)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, job)
}

// @Summary Report Correlation
// @Description Called by the compute worker with the hypothesis test result
// @Tags Training
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Param Correlation body catalog.CorrelationResult true "Correlation"
// @Success 200
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /projects/{id}/trainmodel/correlation/report [post]
func (h *Handlers) ReportCorrelation(ctx *gin.Context) {
	var params types.ProjectParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	var json catalog.CorrelationResult
	if err := ctx.ShouldBindJSON(&json); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	if err := h.service.ReportCorrelation(ctx.Request.Context(), params.ID, json); err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.Status(http.StatusOK)
}

// @Summary Report Training Progress
// @Description Called by the compute worker when training begins
// @Tags Training
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Param modelId path string true "modelId"
// @Success 200
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /projects/{id}/trainmodel/{modelId}/progress [post]
func (h *Handlers) ReportTrainingProgress(ctx *gin.Context) {
	var params types.ModelParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	if err := h.service.ReportTrainingProgress(ctx.Request.Context(), params.ID, params.ModelID); err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.Status(http.StatusOK)
}

// @Summary Report Model Done
// @Description Called by the compute worker when one algorithm ends
// @Tags Training
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Param modelId path string true "modelId"
// @Param type query string false "train"
// @Param Model body types.ModelDoneRequest true "Model"
// @Success 200
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /projects/{id}/trainmodel/{modelId}/done [post]
func (h *Handlers) ReportModelDone(ctx *gin.Context) {
	var params types.ModelParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	var query types.ModelDoneQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	var json types.ModelDoneRequest
	if err := ctx.ShouldBindJSON(&json); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	if err := h.service.ReportModelDone(ctx.Request.Context(), params.ID, params.ModelID, json); err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.Status(http.StatusOK)
}
