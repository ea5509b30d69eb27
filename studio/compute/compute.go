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

//go:generate mockgen -destination mocks/compute_mock.go -source compute.go -package mocks

package compute

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-http-utils/headers"
	"github.com/hashicorp/go-retryablehttp"

	"d7y.io/studio/internal/dferrors"
	logger "d7y.io/studio/internal/dflog"
	"d7y.io/studio/pkg/types"
	"d7y.io/studio/studio/config"
	"d7y.io/studio/studio/storage"
)

const (
	edaGraphPath        = "/api/eda/graph"
	advancedEdaPath     = "/api/eda/advinfo"
	multiUnivariatePath = "/api/report/multiunivariate"
	readDataPath        = "/api/data/read"
)

// Compute is the interface of the reporting endpoints of the compute service.
type Compute interface {
	// EdaGraph renders the distribution of one feature as html.
	EdaGraph(context.Context, *EdaGraphRequest) (string, error)

	// AdvancedEdaInfo renders the advanced EDA report of a dataset as html.
	AdvancedEdaInfo(context.Context, *AdvancedEdaRequest) (string, error)

	// MultiUnivariate renders an analysis of selected features as html or a base64 image.
	MultiUnivariate(context.Context, *MultiUnivariateRequest) (*Report, error)

	// ReadData previews datasets that are not csv.
	ReadData(context.Context, *ReadDataRequest) (*storage.Preview, error)
}

type EdaGraphRequest struct {
	AfterEdaDataFilePath string `json:"afterEdaDataFilePath" binding:"required"`
	ColName              string `json:"colName" binding:"required"`
	BackGround           string `json:"backGround"`
	ForeGround           string `json:"foreGround"`
	NoOfBins             int    `json:"noOfBins"`
}

type AdvancedEdaRequest struct {
	ProjectID            uint   `json:"project_id"`
	Filename             string `json:"filename"`
	AfterEdaDataFilePath string `json:"afterEdaDataFilePath"`
	FileEncoding         string `json:"file_encoding"`
}

type MultiUnivariateRequest struct {
	AfterEdaDataFilePath string             `json:"afterEdaDataFilePath" binding:"required"`
	BackGround           string             `json:"backGround"`
	ForeGround           string             `json:"foreGround"`
	SelectedVariables    []string           `json:"selectedVariables" binding:"required,min=1"`
	EdaSummary           []types.SummaryRow `json:"edaSummary"`
	Target               bool               `json:"target"`
}

type ReadDataRequest struct {
	Filename     string `json:"filename"`
	FileEncoding string `json:"file_encoding"`
	Rows         int    `json:"rows"`
}

// Report is rendered content of the compute service.
type Report struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

type compute struct {
	addr   string
	client *retryablehttp.Client
}

// New returns a new Compute instance.
func New(cfg *config.ComputeConfig) Compute {
	client := retryablehttp.NewClient()
	client.RetryMax = cfg.RetryMax
	client.HTTPClient.Timeout = cfg.Timeout
	client.Logger = &retryLogger{}
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return &compute{
		addr:   strings.TrimSuffix(cfg.Addr, "/"),
		client: client,
	}
}

// EdaGraph renders the distribution of one feature as html.
func (c *compute) EdaGraph(ctx context.Context, req *EdaGraphRequest) (string, error) {
	b, err := c.do(ctx, http.MethodPost, edaGraphPath, req)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// AdvancedEdaInfo renders the advanced EDA report of a dataset as html.
func (c *compute) AdvancedEdaInfo(ctx context.Context, req *AdvancedEdaRequest) (string, error) {
	b, err := c.do(ctx, http.MethodPost, advancedEdaPath, req)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// MultiUnivariate renders an analysis of selected features.
func (c *compute) MultiUnivariate(ctx context.Context, req *MultiUnivariateRequest) (*Report, error) {
	b, err := c.do(ctx, http.MethodPost, multiUnivariatePath, req)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Data Report `json:"data"`
	}
	if err := json.Unmarshal(b, &resp); err != nil {
		return nil, fmt.Errorf("decode multiunivariate report: %w", err)
	}

	return &resp.Data, nil
}

// ReadData previews datasets that are not csv.
func (c *compute) ReadData(ctx context.Context, req *ReadDataRequest) (*storage.Preview, error) {
	b, err := c.do(ctx, http.MethodPost, readDataPath, req)
	if err != nil {
		return nil, err
	}

	preview := &storage.Preview{}
	if err := json.Unmarshal(b, preview); err != nil {
		return nil, fmt.Errorf("decode data preview: %w", err)
	}

	return preview, nil
}

func (c *compute) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, c.addr+path, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set(headers.ContentType, "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		logger.Errorf("request compute %s failed: %s", path, err.Error())
		return nil, dferrors.Newf(dferrors.CodeWorkerUnavailable, "compute service is unavailable: %s", err.Error())
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	switch {
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, dferrors.Newf(dferrors.CodeWorkerUnavailable, "compute service %s returned %d", path, resp.StatusCode)
	case resp.StatusCode >= http.StatusBadRequest:
		return nil, dferrors.Newf(dferrors.CodeValidation, "compute service rejected request: %s", strings.TrimSpace(string(data)))
	}

	return data, nil
}
