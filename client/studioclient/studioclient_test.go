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

package studioclient

import (
	"context"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strings"
	"testing"

	"github.com/go-http-utils/headers"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"

	"d7y.io/studio/internal/catalog"
	"d7y.io/studio/internal/dferrors"
	"d7y.io/studio/internal/lifecycle"
	pkgtypes "d7y.io/studio/pkg/types"
)

const mockEndpoint = "http://studio.local:8080"

func newMockClient(t *testing.T) *client {
	c := New(mockEndpoint+"/", WithRetryMax(0)).(*client)
	httpmock.ActivateNonDefault(c.httpClient.HTTPClient)
	t.Cleanup(httpmock.DeactivateAndReset)
	return c
}

func TestClient_UploadDataset(t *testing.T) {
	tests := []struct {
		name   string
		input  *UploadDatasetInput
		mock   func()
		expect func(t *testing.T, result *UploadResult, err error)
	}{
		{
			name:  "upload csv",
			input: &UploadDatasetInput{ProjectID: 1, Filename: "data.csv", Reader: strings.NewReader("age,income,target\n")},
			mock: func() {
				httpmock.RegisterResponder(http.MethodPost, mockEndpoint+"/api/projects/1/data", func(req *http.Request) (*http.Response, error) {
					mediaType, _, err := mime.ParseMediaType(req.Header.Get(headers.ContentType))
					if err != nil || mediaType != "multipart/form-data" {
						return httpmock.NewStringResponse(http.StatusUnprocessableEntity, `{"errors":"no file"}`), nil
					}

					file, header, err := req.FormFile("file")
					if err != nil {
						return nil, err
					}
					defer file.Close()

					b, _ := io.ReadAll(file)
					return httpmock.NewJsonResponse(http.StatusOK, map[string]any{
						"status": "uploaded",
						"projectDetails": map[string]any{
							"id":               1,
							"projectStatus":    "File Uploaded",
							"originalFilename": header.Filename,
							"filename":         string(b),
						},
					})
				})
			},
			expect: func(t *testing.T, result *UploadResult, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal("uploaded", result.Status)
				assert.Equal("File Uploaded", result.ProjectDetails.ProjectStatus)
				assert.Equal("data.csv", result.ProjectDetails.OriginalFilename)
				assert.Equal("age,income,target\n", result.ProjectDetails.Filename)
			},
		},
		{
			name:  "rejected extension",
			input: &UploadDatasetInput{ProjectID: 1, Filename: "data.txt", Reader: strings.NewReader("x")},
			mock: func() {
				httpmock.RegisterResponder(http.MethodPost, mockEndpoint+"/api/projects/1/data",
					httpmock.NewStringResponder(http.StatusBadRequest, `{"message":"Please upload a csv file."}`))
			},
			expect: func(t *testing.T, result *UploadResult, err error) {
				assert := assert.New(t)
				assert.Nil(result)
				var statusErr *StatusError
				assert.ErrorAs(err, &statusErr)
				assert.Equal(http.StatusBadRequest, statusErr.StatusCode)
				assert.EqualError(err, "Please upload a csv file.")
			},
		},
		{
			name:   "missing reader",
			input:  &UploadDatasetInput{ProjectID: 1, Filename: "data.csv"},
			mock:   func() {},
			expect: func(t *testing.T, result *UploadResult, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "invalid Reader")
				assert.Equal(0, httpmock.GetTotalCallCount())
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := newMockClient(t)
			tc.mock()
			result, err := c.UploadDataset(context.Background(), tc.input)
			tc.expect(t, result, err)
		})
	}
}

func TestClient_StartEda(t *testing.T) {
	tests := []struct {
		name   string
		input  *StartEdaInput
		mock   func()
		expect func(t *testing.T, err error)
	}{
		{
			name: "manual eda",
			input: &StartEdaInput{
				ProjectID: 3,
				EdaMode:   pkgtypes.EdaModeManual,
				Strategies: []pkgtypes.FeatureStrategy{
					{FeatureName: "age", Strategy: pkgtypes.StrategyCustom, CustomValue: "30"},
				},
			},
			mock: func() {
				httpmock.RegisterResponder(http.MethodPost, mockEndpoint+"/api/projects/3/eda", func(req *http.Request) (*http.Response, error) {
					var body StartEdaInput
					if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
						return nil, err
					}

					return httpmock.NewJsonResponse(http.StatusOK, []map[string]any{{
						"id":         7,
						"edaMode":    body.EdaMode,
						"strategies": body.Strategies,
					}})
				})
			},
			expect: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "empty custom value",
			input: &StartEdaInput{
				ProjectID:  3,
				EdaMode:    pkgtypes.EdaModeManual,
				Strategies: []pkgtypes.FeatureStrategy{{FeatureName: "age", Strategy: pkgtypes.StrategyCustom}},
			},
			mock: func() {},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.ErrorIs(err, pkgtypes.ErrEmptyCustomValue)
				assert.True(dferrors.IsValidation(err))
				assert.Equal(0, httpmock.GetTotalCallCount())
			},
		},
		{
			name:  "eda already running",
			input: &StartEdaInput{ProjectID: 3, EdaMode: pkgtypes.EdaModeAuto},
			mock: func() {
				httpmock.RegisterResponder(http.MethodPost, mockEndpoint+"/api/projects/3/eda",
					httpmock.NewStringResponder(http.StatusConflict, `{"message":"project status Eda Started does not allow StartEda"}`))
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				var statusErr *StatusError
				assert.ErrorAs(err, &statusErr)
				assert.Equal(http.StatusConflict, statusErr.StatusCode)
			},
		},
		{
			name:  "empty response",
			input: &StartEdaInput{ProjectID: 3, EdaMode: pkgtypes.EdaModeAuto},
			mock: func() {
				httpmock.RegisterResponder(http.MethodPost, mockEndpoint+"/api/projects/3/eda",
					httpmock.NewStringResponder(http.StatusOK, `[]`))
			},
			expect: func(t *testing.T, err error) {
				assert.EqualError(t, err, "empty eda response")
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := newMockClient(t)
			tc.mock()
			eda, err := c.StartEda(context.Background(), tc.input)
			if err == nil {
				assert.Equal(t, uint(7), eda.ID)
				assert.Equal(t, pkgtypes.EdaModeManual, eda.EdaMode)
			}
			tc.expect(t, err)
		})
	}
}

func TestClient_GetEdaProgress(t *testing.T) {
	assert := assert.New(t)
	c := newMockClient(t)
	httpmock.RegisterResponder(http.MethodGet, mockEndpoint+"/api/projects/2/edaprogress",
		httpmock.NewStringResponder(http.StatusOK, `[{"stages":[{"stageTitle":"Calculating missing values","status":true}]}]`))

	stages, err := c.GetEdaProgress(context.Background(), 2)
	assert.NoError(err)
	assert.Equal([]lifecycle.Stage{{StageTitle: "Calculating missing values", Status: true}}, stages)
}

func TestClient_GetEdas(t *testing.T) {
	assert := assert.New(t)
	c := newMockClient(t)
	httpmock.RegisterResponder(http.MethodGet, mockEndpoint+"/api/projects/2/eda",
		httpmock.NewStringResponder(http.StatusOK, `[{"id":4,"edaMode":"auto","edaSummary":[{"col_name":"age","data_type":"Numeric","data_miss_value":0}],"targetList":["age"]}]`))

	edas, err := c.GetEdas(context.Background(), 2)
	assert.NoError(err)
	assert.Len(edas, 1)
	assert.Equal(uint(4), edas[0].ID)
	assert.Equal([]string{"age"}, edas[0].TargetList)
	assert.Equal("age", edas[0].EdaSummary[0].ColName)
}

func TestClient_StartTraining(t *testing.T) {
	tests := []struct {
		name   string
		input  *StartTrainingInput
		expect func(t *testing.T, err error)
	}{
		{
			name: "train",
			input: &StartTrainingInput{
				ProjectID:          5,
				DepVariable:        "target",
				IndepVariable:      []string{"age", "income"},
				Algorithms:         []string{"logistic-regression"},
				ValidationStrategy: pkgtypes.NewCVStrategy(),
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(1, httpmock.GetTotalCallCount())
			},
		},
		{
			name:  "no features",
			input: &StartTrainingInput{ProjectID: 5, DepVariable: "target", IndepVariable: []string{"target"}, Algorithms: []string{"logistic-regression"}},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "Please select features.")
				assert.Equal(0, httpmock.GetTotalCallCount())
			},
		},
		{
			name:  "no algorithms",
			input: &StartTrainingInput{ProjectID: 5, DepVariable: "target", IndepVariable: []string{"age"}},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "Please select algorithms.")
				assert.Equal(0, httpmock.GetTotalCallCount())
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := newMockClient(t)
			httpmock.RegisterResponder(http.MethodPost, mockEndpoint+"/api/projects/5/trainmodel",
				httpmock.NewStringResponder(http.StatusOK, `{"id":9,"depVariable":"target","status":"Training Started"}`))
			_, err := c.StartTraining(context.Background(), tc.input)
			tc.expect(t, err)
		})
	}
}

func TestClient_GetAlgorithms(t *testing.T) {
	assert := assert.New(t)
	c := newMockClient(t)
	httpmock.RegisterResponderWithQuery(http.MethodGet, mockEndpoint+"/api/algorithms", "multilabel=true&type=classification",
		httpmock.NewStringResponder(http.StatusOK, `[{"id":"random-forest-classifier","name":"Random Forest","type":"classification","multilabel":true}]`))

	multilabel := true
	algorithms, err := c.GetAlgorithms(context.Background(), &GetAlgorithmsInput{Type: catalog.TypeClassification, Multilabel: &multilabel})
	assert.NoError(err)
	assert.Len(algorithms, 1)
	assert.Equal(catalog.TypeClassification, algorithms[0].Type)
	assert.True(algorithms[0].Multilabel)
}

func TestClient_DownloadEdaSummary(t *testing.T) {
	assert := assert.New(t)
	c := newMockClient(t)
	httpmock.RegisterResponder(http.MethodGet, mockEndpoint+"/api/eda/4/edaSummary/download",
		httpmock.NewStringResponder(http.StatusOK, "Feature Name,Var Type\nage,Numeric\n"))
	httpmock.RegisterResponder(http.MethodGet, mockEndpoint+"/api/eda/5/edaSummary/download",
		httpmock.NewStringResponder(http.StatusNotFound, `{"message":"record not found"}`))

	rc, err := c.DownloadEdaSummary(context.Background(), 4)
	assert.NoError(err)
	b, err := io.ReadAll(rc)
	assert.NoError(err)
	assert.NoError(rc.Close())
	assert.Equal("Feature Name,Var Type\nage,Numeric\n", string(b))

	_, err = c.DownloadEdaSummary(context.Background(), 5)
	assert.EqualError(err, "record not found")
}

func TestStatusError(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		expect string
	}{
		{
			name:   "message",
			body:   `{"message":"Please complete EDA."}`,
			expect: "Please complete EDA.",
		},
		{
			name:   "bind errors",
			body:   `{"errors":"Key: 'StartEdaRequest.EdaMode' Error:Field validation for 'EdaMode' failed on the 'edamode' tag"}`,
			expect: "Key: 'StartEdaRequest.EdaMode' Error:Field validation for 'EdaMode' failed on the 'edamode' tag",
		},
		{
			name:   "plain text",
			body:   "bad gateway\n",
			expect: "bad gateway",
		},
		{
			name:   "empty body",
			body:   "",
			expect: "bad response status 502",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := newMockClient(t)
			httpmock.RegisterResponder(http.MethodGet, mockEndpoint+"/api/projects/1",
				httpmock.NewStringResponder(http.StatusBadGateway, tc.body))
			_, err := c.GetProject(context.Background(), 1)
			assert.EqualError(t, err, tc.expect)
		})
	}
}
