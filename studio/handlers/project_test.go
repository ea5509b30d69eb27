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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-http-utils/headers"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"d7y.io/studio/internal/dferrors"
	"d7y.io/studio/internal/lifecycle"
	"d7y.io/studio/studio/middlewares"
	"d7y.io/studio/studio/models"
	"d7y.io/studio/studio/service"
	"d7y.io/studio/studio/service/mocks"
	"d7y.io/studio/studio/storage"
	"d7y.io/studio/studio/types"
)

var (
	mockProjectModel = &models.Project{
		BaseModel:     models.BaseModel{ID: 1},
		Name:          "churn",
		ProjectStatus: string(lifecycle.StatusProjectCreated),
		FileEncoding:  "utf-8",
	}
	mockUploadedProjectModel = &models.Project{
		BaseModel:        models.BaseModel{ID: 1},
		Name:             "churn",
		ProjectStatus:    string(lifecycle.StatusFileUploaded),
		Filename:         "1/5f1c.csv",
		OriginalFilename: "data.csv",
		FileEncoding:     "utf-8",
	}
)

func mockProjectRouter(h *Handlers) *gin.Engine {
	r := newMockRouter()
	ps := r.Group("/api/projects")
	ps.POST("", h.CreateProject)
	ps.GET("", h.GetProjects)
	ps.GET(":id", h.GetProject)
	ps.PUT(":id", h.UpdateProject)
	ps.POST(":id/data", h.UploadDataset)
	ps.POST(":id/data/read", h.ReadData)
	return r
}

func TestHandlers_CreateProject(t *testing.T) {
	tests := []struct {
		name   string
		req    *http.Request
		mock   func(ms *mocks.MockServiceMockRecorder)
		expect func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name: "unprocessable entity",
			req:  httptest.NewRequest(http.MethodPost, "/api/projects", strings.NewReader(`{"fileEncoding":"utf-8"}`)),
			mock: func(ms *mocks.MockServiceMockRecorder) {},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusUnprocessableEntity, w.Code)
			},
		},
		{
			name: "unknown flow",
			req:  httptest.NewRequest(http.MethodPost, "/api/projects", strings.NewReader(`{"name":"churn","flowId":9}`)),
			mock: func(ms *mocks.MockServiceMockRecorder) {
				flowID := uint(9)
				ms.CreateProject(gomock.Any(), gomock.Eq(types.CreateProjectRequest{Name: "churn", FlowID: &flowID})).
					Return(nil, dferrors.New(dferrors.CodeNotFound, "flow 9 not found")).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusNotFound, w.Code)
			},
		},
		{
			name: "success",
			req:  httptest.NewRequest(http.MethodPost, "/api/projects", strings.NewReader(`{"name":"churn","fileEncoding":"utf-8"}`)),
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.CreateProject(gomock.Any(), gomock.Eq(types.CreateProjectRequest{Name: "churn", FileEncoding: "utf-8"})).
					Return(mockProjectModel, nil).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)
				project := models.Project{}
				assert.NoError(json.Unmarshal(w.Body.Bytes(), &project))
				assert.Equal(uint(1), project.ID)
				assert.Equal("Project Created", project.ProjectStatus)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()
			svc := mocks.NewMockService(ctl)
			w := httptest.NewRecorder()
			h := New(svc, nil)
			mockRouter := mockProjectRouter(h)

			tc.mock(svc.EXPECT())
			mockRouter.ServeHTTP(w, tc.req)
			tc.expect(t, w)
		})
	}
}

func TestHandlers_UpdateProject(t *testing.T) {
	tests := []struct {
		name   string
		req    *http.Request
		mock   func(ms *mocks.MockServiceMockRecorder)
		expect func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name: "unprocessable entity",
			req:  httptest.NewRequest(http.MethodPut, "/api/projects/churn", strings.NewReader(`{"name":"churn"}`)),
			mock: func(ms *mocks.MockServiceMockRecorder) {},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusUnprocessableEntity, w.Code)
			},
		},
		{
			name: "success",
			req:  httptest.NewRequest(http.MethodPut, "/api/projects/1", strings.NewReader(`{"fileEncoding":"latin-1"}`)),
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.UpdateProject(gomock.Any(), gomock.Eq(uint(1)), gomock.Eq(types.UpdateProjectRequest{FileEncoding: "latin-1"})).
					Return(mockProjectModel, nil).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()
			svc := mocks.NewMockService(ctl)
			w := httptest.NewRecorder()
			h := New(svc, nil)
			mockRouter := mockProjectRouter(h)

			tc.mock(svc.EXPECT())
			mockRouter.ServeHTTP(w, tc.req)
			tc.expect(t, w)
		})
	}
}

func TestHandlers_GetProject(t *testing.T) {
	tests := []struct {
		name   string
		req    *http.Request
		mock   func(ms *mocks.MockServiceMockRecorder)
		expect func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name: "unprocessable entity",
			req:  httptest.NewRequest(http.MethodGet, "/api/projects/0", nil),
			mock: func(ms *mocks.MockServiceMockRecorder) {},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusUnprocessableEntity, w.Code)
			},
		},
		{
			name: "not found",
			req:  httptest.NewRequest(http.MethodGet, "/api/projects/2", nil),
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.GetProject(gomock.Any(), gomock.Eq(uint(2))).
					Return(nil, dferrors.Newf(dferrors.CodeNotFound, "project %d not found", 2)).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusNotFound, w.Code)
				resp := middlewares.ErrorResponse{}
				assert.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal("project 2 not found", resp.Message)
			},
		},
		{
			name: "success",
			req:  httptest.NewRequest(http.MethodGet, "/api/projects/1", nil),
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.GetProject(gomock.Any(), gomock.Eq(uint(1))).Return(mockUploadedProjectModel, nil).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)
				project := models.Project{}
				assert.NoError(json.Unmarshal(w.Body.Bytes(), &project))
				assert.Equal("File Uploaded", project.ProjectStatus)
				assert.Equal("data.csv", project.OriginalFilename)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()
			svc := mocks.NewMockService(ctl)
			w := httptest.NewRecorder()
			h := New(svc, nil)
			mockRouter := mockProjectRouter(h)

			tc.mock(svc.EXPECT())
			mockRouter.ServeHTTP(w, tc.req)
			tc.expect(t, w)
		})
	}
}

func TestHandlers_GetProjects(t *testing.T) {
	tests := []struct {
		name   string
		req    *http.Request
		mock   func(ms *mocks.MockServiceMockRecorder)
		expect func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name: "unprocessable entity",
			req:  httptest.NewRequest(http.MethodGet, "/api/projects?per_page=100", nil),
			mock: func(ms *mocks.MockServiceMockRecorder) {},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusUnprocessableEntity, w.Code)
			},
		},
		{
			name: "success",
			req:  httptest.NewRequest(http.MethodGet, "/api/projects?projectStatus=File+Uploaded", nil),
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.GetProjects(gomock.Any(), gomock.Eq(types.GetProjectsQuery{ProjectStatus: "File Uploaded", Page: 1, PerPage: 10})).
					Return([]models.Project{*mockUploadedProjectModel}, int64(1), nil).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)
				assert.Contains(w.Header().Get(headers.Link), "rel=last")
				projects := []models.Project{}
				assert.NoError(json.Unmarshal(w.Body.Bytes(), &projects))
				assert.Len(projects, 1)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()
			svc := mocks.NewMockService(ctl)
			w := httptest.NewRecorder()
			h := New(svc, nil)
			mockRouter := mockProjectRouter(h)

			tc.mock(svc.EXPECT())
			mockRouter.ServeHTTP(w, tc.req)
			tc.expect(t, w)
		})
	}
}

func TestHandlers_UploadDataset(t *testing.T) {
	content := "age,income,target\n31,4200,1\n"
	tests := []struct {
		name    string
		req     *http.Request
		maxSize int64
		mock    func(ms *mocks.MockServiceMockRecorder)
		expect  func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name: "missing file",
			req:  httptest.NewRequest(http.MethodPost, "/api/projects/1/data", nil),
			mock: func(ms *mocks.MockServiceMockRecorder) {},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusUnprocessableEntity, w.Code)
			},
		},
		{
			name: "unsupported extension",
			req:  newUploadRequest("/api/projects/1/data", "data.txt", content),
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.UploadDataset(gomock.Any(), gomock.Eq(uint(1)), gomock.Eq("data.txt"), gomock.Eq(int64(len(content))), gomock.Any()).
					Return(nil, storage.ErrInvalidExtension).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusBadRequest, w.Code)
				resp := middlewares.ErrorResponse{}
				assert.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal("Please upload a csv file.", resp.Message)
			},
		},
		{
			name:    "oversized body is rejected before spooling",
			req:     newUploadRequest("/api/projects/1/data", "data.csv", strings.Repeat("31,4200,1\n", 16<<10)),
			maxSize: 1 << 10,
			mock:    func(ms *mocks.MockServiceMockRecorder) {},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusBadRequest, w.Code)
				resp := middlewares.ErrorResponse{}
				assert.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal("dataset exceeds 1024 bytes", resp.Message)
			},
		},
		{
			name:    "body within bound",
			req:     newUploadRequest("/api/projects/1/data", "data.csv", content),
			maxSize: 1 << 10,
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.UploadDataset(gomock.Any(), gomock.Eq(uint(1)), gomock.Eq("data.csv"), gomock.Eq(int64(len(content))), gomock.Any()).
					Return(&service.UploadResult{Status: types.UploadStatusUploaded, ProjectDetails: mockUploadedProjectModel}, nil).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)
			},
		},
		{
			name: "busy project",
			req:  newUploadRequest("/api/projects/1/data", "data.csv", content),
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.UploadDataset(gomock.Any(), gomock.Eq(uint(1)), gomock.Eq("data.csv"), gomock.Any(), gomock.Any()).
					Return(nil, dferrors.New(dferrors.CodeConflict, "project status Eda Started does not allow Upload")).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusConflict, w.Code)
			},
		},
		{
			name: "success",
			req:  newUploadRequest("/api/projects/1/data", "data.csv", content),
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.UploadDataset(gomock.Any(), gomock.Eq(uint(1)), gomock.Eq("data.csv"), gomock.Eq(int64(len(content))), gomock.Any()).
					Return(&service.UploadResult{Status: types.UploadStatusUploaded, ProjectDetails: mockUploadedProjectModel}, nil).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)
				result := service.UploadResult{}
				assert.NoError(json.Unmarshal(w.Body.Bytes(), &result))
				assert.Equal("uploaded", result.Status)
				assert.Equal("File Uploaded", result.ProjectDetails.ProjectStatus)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()
			svc := mocks.NewMockService(ctl)
			w := httptest.NewRecorder()
			h := New(svc, nil, WithUploadMaxSize(tc.maxSize))
			mockRouter := mockProjectRouter(h)

			tc.mock(svc.EXPECT())
			mockRouter.ServeHTTP(w, tc.req)
			tc.expect(t, w)
		})
	}
}

func TestHandlers_ReadData(t *testing.T) {
	tests := []struct {
		name   string
		req    *http.Request
		mock   func(ms *mocks.MockServiceMockRecorder)
		expect func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name: "dataset required",
			req:  httptest.NewRequest(http.MethodPost, "/api/projects/1/data/read", nil),
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.ReadData(gomock.Any(), gomock.Eq(uint(1))).
					Return(nil, dferrors.New(dferrors.CodeValidation, "Please upload file and go ahead.")).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusBadRequest, w.Code)
			},
		},
		{
			name: "success",
			req:  httptest.NewRequest(http.MethodPost, "/api/projects/1/data/read", nil),
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.ReadData(gomock.Any(), gomock.Eq(uint(1))).Return(&storage.Preview{
					Head: []string{"age", "income", "target"},
					PreviewData: storage.PreviewData{
						DataFrame: []map[string]string{{"age": "31", "income": "", "target": "1"}},
					},
				}, nil).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)
				var resp struct {
					Head        []string            `json:"head"`
					PreviewData storage.PreviewData `json:"previewData"`
					Status      string              `json:"status"`
				}
				assert.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal([]string{"age", "income", "target"}, resp.Head)
				assert.Equal("", resp.PreviewData.DataFrame[0]["income"])
				assert.Equal("read", resp.Status)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()
			svc := mocks.NewMockService(ctl)
			w := httptest.NewRecorder()
			h := New(svc, nil)
			mockRouter := mockProjectRouter(h)

			tc.mock(svc.EXPECT())
			mockRouter.ServeHTTP(w, tc.req)
			tc.expect(t, w)
		})
	}
}
