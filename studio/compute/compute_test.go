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

package compute

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"

	"d7y.io/studio/internal/dferrors"
	"d7y.io/studio/studio/config"
)

const mockComputeAddr = "http://compute.local:5000"

func newMockCompute(t *testing.T) *compute {
	c := New(&config.ComputeConfig{
		Addr:    mockComputeAddr + "/",
		Timeout: time.Second,
	}).(*compute)
	httpmock.ActivateNonDefault(c.client.HTTPClient)
	t.Cleanup(httpmock.DeactivateAndReset)
	return c
}

func TestCompute_EdaGraph(t *testing.T) {
	tests := []struct {
		name   string
		mock   func()
		expect func(t *testing.T, html string, err error)
	}{
		{
			name: "render graph",
			mock: func() {
				httpmock.RegisterResponder(http.MethodPost, mockComputeAddr+edaGraphPath, func(req *http.Request) (*http.Response, error) {
					var body EdaGraphRequest
					if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
						return nil, err
					}

					return httpmock.NewStringResponse(http.StatusOK, "<div>"+body.ColName+"</div>"), nil
				})
			},
			expect: func(t *testing.T, html string, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal("<div>age</div>", html)
			},
		},
		{
			name: "bad request",
			mock: func() {
				httpmock.RegisterResponder(http.MethodPost, mockComputeAddr+edaGraphPath, httpmock.NewStringResponder(http.StatusBadRequest, "unknown column\n"))
			},
			expect: func(t *testing.T, html string, err error) {
				assert := assert.New(t)
				assert.True(dferrors.IsValidation(err))
				assert.Contains(err.Error(), "unknown column")
			},
		},
		{
			name: "server error",
			mock: func() {
				httpmock.RegisterResponder(http.MethodPost, mockComputeAddr+edaGraphPath, httpmock.NewStringResponder(http.StatusInternalServerError, "boom"))
			},
			expect: func(t *testing.T, html string, err error) {
				assert := assert.New(t)
				assert.True(dferrors.CheckError(err, dferrors.CodeWorkerUnavailable))
			},
		},
		{
			name: "connection error",
			mock: func() {
				httpmock.RegisterResponder(http.MethodPost, mockComputeAddr+edaGraphPath, httpmock.NewErrorResponder(context.DeadlineExceeded))
			},
			expect: func(t *testing.T, html string, err error) {
				assert := assert.New(t)
				assert.True(dferrors.CheckError(err, dferrors.CodeWorkerUnavailable))
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := newMockCompute(t)
			tc.mock()
			html, err := c.EdaGraph(context.Background(), &EdaGraphRequest{AfterEdaDataFilePath: "/data/1/clean.csv", ColName: "age"})
			tc.expect(t, html, err)
		})
	}
}

func TestCompute_MultiUnivariate(t *testing.T) {
	assert := assert.New(t)
	c := newMockCompute(t)
	httpmock.RegisterResponder(http.MethodPost, mockComputeAddr+multiUnivariatePath,
		httpmock.NewStringResponder(http.StatusOK, `{"data":{"contentType":"image","content":"aGk="}}`))

	report, err := c.MultiUnivariate(context.Background(), &MultiUnivariateRequest{SelectedVariables: []string{"age"}})
	assert.NoError(err)
	assert.Equal(&Report{ContentType: "image", Content: "aGk="}, report)
	assert.Equal(1, httpmock.GetTotalCallCount())
}

func TestCompute_ReadData(t *testing.T) {
	assert := assert.New(t)
	c := newMockCompute(t)
	httpmock.RegisterResponder(http.MethodPost, mockComputeAddr+readDataPath,
		httpmock.NewStringResponder(http.StatusOK, `{"head":["a","b"],"previewData":{"dataFrame":[{"a":"1","b":""}]}}`))

	preview, err := c.ReadData(context.Background(), &ReadDataRequest{Filename: "/data/1/x.xlsx", Rows: 5})
	assert.NoError(err)
	assert.Equal([]string{"a", "b"}, preview.Head)
	assert.Len(preview.PreviewData.DataFrame, 1)
}

func TestCompute_AdvancedEdaInfo(t *testing.T) {
	assert := assert.New(t)
	c := newMockCompute(t)
	httpmock.RegisterResponder(http.MethodPost, mockComputeAddr+advancedEdaPath,
		httpmock.NewStringResponder(http.StatusOK, "<html></html>"))

	html, err := c.AdvancedEdaInfo(context.Background(), &AdvancedEdaRequest{ProjectID: 1})
	assert.NoError(err)
	assert.Equal("<html></html>", html)
}
