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
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"d7y.io/studio/internal/dferrors"
	"d7y.io/studio/studio/types"
)

// multipartOverhead is the room left for the multipart framing of an upload.
const multipartOverhead = 64 << 10

// @Summary Create Project
// @Description Create by json config
// @Tags Project
// @Accept json
// @Produce json
// @Param Project body types.CreateProjectRequest true "Project"
// @Success 200 {object} models.Project
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /projects [post]
func (h *Handlers) CreateProject(ctx *gin.Context) {
	var json types.CreateProjectRequest
	if err := ctx.ShouldBindJSON(&json); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	project, err := h.service.CreateProject(ctx.Request.Context(), json)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, project)
}

// @Summary Update Project
// @Description Update by json config
// @Tags Project
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Param Project body types.UpdateProjectRequest true "Project"
// @Success 200 {object} models.Project
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /projects/{id} [put]
func (h *Handlers) UpdateProject(ctx *gin.Context) {
	var params types.ProjectParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	var json types.UpdateProjectRequest
	if err := ctx.ShouldBindJSON(&json); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	project, err := h.service.UpdateProject(ctx.Request.Context(), params.ID, json)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, project)
}

// @Summary Get Project
// @Description Get Project by id
// @Tags Project
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Success 200 {object} models.Project
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /projects/{id} [get]
func (h *Handlers) GetProject(ctx *gin.Context) {
	var params types.ProjectParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	project, err := h.service.GetProject(ctx.Request.Context(), params.ID)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, project)
}

// @Summary Get Projects
// @Description Get Projects
// @Tags Project
// @Accept json
// @Produce json
// @Param page query int true "current page" default(0)
// @Param per_page query int true "return max item count, default 10, max 50" default(10) minimum(2) maximum(50)
// @Success 200 {object} []models.Project
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /projects [get]
func (h *Handlers) GetProjects(ctx *gin.Context) {
	var query types.GetProjectsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	h.setPaginationDefault(&query.Page, &query.PerPage)
	projects, count, err := h.service.GetProjects(ctx.Request.Context(), query)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	h.setPaginationLinkHeader(ctx, query.Page, query.PerPage, int(count))
	ctx.JSON(http.StatusOK, projects)
}

// @Summary Upload Dataset
// @Description Upload the dataset of a project, a project with a flow starts the flow instead
// @Tags Project
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "id"
// @Param file formData file true "dataset"
// @Success 200 {object} service.UploadResult
// @Failure 400
// @Failure 404
// @Failure 409
// @Failure 500
// @Router /projects/{id}/data [post]
func (h *Handlers) UploadDataset(ctx *gin.Context) {
	var params types.ProjectParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	if h.uploadMaxSize > 0 {
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, h.uploadMaxSize+multipartOverhead)
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			ctx.Error(dferrors.Newf(dferrors.CodeValidation, "dataset exceeds %d bytes", h.uploadMaxSize)) // nolint: errcheck
			return
		}

		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	f, err := file.Open()
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}
	defer f.Close()

	result, err := h.service.UploadDataset(ctx.Request.Context(), params.ID, file.Filename, file.Size, f)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// @Summary Read Dataset
// @Description Preview the first rows of the uploaded dataset
// @Tags Project
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Success 200
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /projects/{id}/data/read [post]
func (h *Handlers) ReadData(ctx *gin.Context) {
	var params types.ProjectParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	preview, err := h.service.ReadData(ctx.Request.Context(), params.ID)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"head":        preview.Head,
		"previewData": preview.PreviewData,
		"profiles":    preview.Profiles,
		"status":      types.ReadStatusRead,
	})
}
