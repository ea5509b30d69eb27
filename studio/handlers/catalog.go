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

	"d7y.io/studio/studio/types"
)

// @Summary Get Algorithms
// @Description Get the algorithm catalog, optionally filtered by problem type
// @Tags Algorithm
// @Accept json
// @Produce json
// @Param type query string false "regression or classification"
// @Param multilabel query bool false "multilabel support"
// @Success 200 {object} []catalog.Algorithm
// @Failure 400
// @Router /algorithms [get]
func (h *Handlers) GetAlgorithms(ctx *gin.Context) {
	var query types.GetAlgorithmsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, h.service.GetAlgorithms(ctx.Request.Context(), query))
}

// @Summary Get Algorithm Fields
// @Description Get the hyperparameter fields of an algorithm
// @Tags Algorithm
// @Accept json
// @Produce json
// @Param algoId path string true "algoId"
// @Success 200 {object} []catalog.Field
// @Failure 400
// @Failure 404
// @Router /algorithms/{algoId}/fields [get]
func (h *Handlers) GetAlgorithmFields(ctx *gin.Context) {
	var params types.AlgorithmParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	fields, err := h.service.GetAlgorithmFields(ctx.Request.Context(), params.AlgoID)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, fields)
}
