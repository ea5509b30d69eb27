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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-http-utils/headers"
	"github.com/hashicorp/go-retryablehttp"

	"d7y.io/studio/internal/catalog"
	logger "d7y.io/studio/internal/dflog"
	"d7y.io/studio/internal/lifecycle"
	pkgtypes "d7y.io/studio/pkg/types"
	"d7y.io/studio/studio/models"
)

const (
	// DefaultTimeout is the timeout of one http request.
	DefaultTimeout = 30 * time.Second

	// DefaultRetryMax is the number of retries of a failed request.
	DefaultRetryMax = 3
)

// Client is the http client of the studio API.
type Client interface {
	// GetProject returns a project.
	GetProject(ctx context.Context, projectID uint) (*models.Project, error)

	// UploadDataset uploads the dataset of a project.
	UploadDataset(ctx context.Context, input *UploadDatasetInput) (*UploadResult, error)

	// ReadData returns the preview of the uploaded dataset.
	ReadData(ctx context.Context, projectID uint) (*ReadDataResult, error)

	// ExecuteFlow runs the ingestion flow of a project.
	ExecuteFlow(ctx context.Context, projectID, flowID uint) (*UploadResult, error)

	// StartEda starts an EDA run.
	StartEda(ctx context.Context, input *StartEdaInput) (*models.EdaRun, error)

	// GetEdaProgress returns the stage window of the running EDA.
	GetEdaProgress(ctx context.Context, projectID uint) ([]lifecycle.Stage, error)

	// GetEdas returns the EDA runs of a project, the latest first.
	GetEdas(ctx context.Context, projectID uint) ([]EdaResult, error)

	// DownloadEdaSummary returns the summary of an EDA run as csv.
	DownloadEdaSummary(ctx context.Context, edaID uint) (io.ReadCloser, error)

	// StartTraining starts a training run.
	StartTraining(ctx context.Context, input *StartTrainingInput) (*models.TrainingRun, error)

	// GetCorrelation starts the hypothesis test of a target.
	GetCorrelation(ctx context.Context, input *GetCorrelationInput) (*models.Job, error)

	// ListModels returns the training runs of a project.
	ListModels(ctx context.Context, projectID uint) ([]models.TrainingRun, error)

	// GetAlgorithms returns the algorithm catalog.
	GetAlgorithms(ctx context.Context, input *GetAlgorithmsInput) ([]catalog.Algorithm, error)

	// GetAlgorithmFields returns the hyperparameter form of an algorithm.
	GetAlgorithmFields(ctx context.Context, algoID string) ([]catalog.Field, error)
}

// client provides the studio API.
type client struct {
	endpoint   string
	httpClient *retryablehttp.Client
}

// Option is a functional option for configuring the client.
type Option func(c *client)

// WithHTTPClient set http client for the client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *client) {
		c.httpClient.HTTPClient = httpClient
	}
}

// WithRetryMax set the number of retries of a failed request.
func WithRetryMax(retryMax int) Option {
	return func(c *client) {
		c.httpClient.RetryMax = retryMax
	}
}

// New client instance.
func New(endpoint string, options ...Option) Client {
	httpClient := retryablehttp.NewClient()
	httpClient.RetryMax = DefaultRetryMax
	httpClient.HTTPClient.Timeout = DefaultTimeout
	httpClient.Logger = &retryLogger{}
	httpClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	c := &client{
		endpoint:   strings.TrimSuffix(endpoint, "/"),
		httpClient: httpClient,
	}

	for _, opt := range options {
		opt(c)
	}

	return c
}

// StatusError is a non 2xx response of the studio API.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return e.Message
	}

	return fmt.Sprintf("bad response status %d", e.StatusCode)
}

// UploadResult is the project after an upload.
type UploadResult struct {
	Status         string          `json:"status"`
	ProjectDetails *models.Project `json:"projectDetails"`
}

// ReadDataResult is the preview of a dataset.
type ReadDataResult struct {
	Head        []string `json:"head"`
	PreviewData struct {
		DataFrame []map[string]string `json:"dataFrame"`
	} `json:"previewData"`
	Status string `json:"status"`
}

// EdaResult is an EDA run with its target candidates.
type EdaResult struct {
	models.EdaRun
	TargetList []string `json:"targetList"`
}

// UploadDatasetInput is used to construct request of uploading a dataset.
type UploadDatasetInput struct {
	ProjectID uint
	Filename  string
	Reader    io.Reader
}

// Validate validates UploadDatasetInput fields.
func (i *UploadDatasetInput) Validate() error {
	if i.ProjectID == 0 {
		return fmt.Errorf("invalid ProjectID")
	}

	if i.Filename == "" {
		return fmt.Errorf("invalid Filename")
	}

	if i.Reader == nil {
		return fmt.Errorf("invalid Reader")
	}

	return nil
}

// StartEdaInput is used to construct request of starting EDA.
type StartEdaInput struct {
	ProjectID         uint                       `json:"-"`
	EdaMode           string                     `json:"edaMode"`
	Strategies        []pkgtypes.FeatureStrategy `json:"strategies"`
	CustomEdaStrategy map[string]string          `json:"customEdaStrategy,omitempty"`
}

// Validate validates StartEdaInput fields.
func (i *StartEdaInput) Validate() error {
	if i.ProjectID == 0 {
		return fmt.Errorf("invalid ProjectID")
	}

	if i.EdaMode != pkgtypes.EdaModeAuto && i.EdaMode != pkgtypes.EdaModeManual {
		return fmt.Errorf("invalid EdaMode")
	}

	return pkgtypes.CheckCustomValues(i.EdaMode, i.Strategies, i.CustomEdaStrategy)
}

// StartTrainingInput is used to construct request of starting training.
type StartTrainingInput struct {
	ProjectID          uint                        `json:"-"`
	DepVariable        string                      `json:"depVariable"`
	IndepVariable      []string                    `json:"indepVariable"`
	Algorithms         []string                    `json:"algorithms"`
	ValidationStrategy pkgtypes.ValidationStrategy `json:"validationStrategy"`
	HptPreference      []catalog.Preference        `json:"hptPreference,omitempty"`
	FeatureScaling     string                      `json:"featureScaling,omitempty"`
}

// Validate validates StartTrainingInput fields.
func (i *StartTrainingInput) Validate() error {
	if i.ProjectID == 0 {
		return fmt.Errorf("invalid ProjectID")
	}

	return pkgtypes.CheckTrainingSelection(i.DepVariable, i.IndepVariable, i.Algorithms)
}

// GetCorrelationInput is used to construct request of the hypothesis test.
type GetCorrelationInput struct {
	ProjectID     uint     `json:"-"`
	DepVariable   string   `json:"depVariable"`
	IndepVariable []string `json:"indepVariable,omitempty"`
}

// Validate validates GetCorrelationInput fields.
func (i *GetCorrelationInput) Validate() error {
	if i.ProjectID == 0 {
		return fmt.Errorf("invalid ProjectID")
	}

	if i.DepVariable == "" {
		return pkgtypes.ErrTargetRequired
	}

	return nil
}

// GetAlgorithmsInput filters the algorithm catalog.
type GetAlgorithmsInput struct {
	Type       catalog.Type
	Multilabel *bool
}

func (c *client) GetProject(ctx context.Context, projectID uint) (*models.Project, error) {
	var project models.Project
	if err := c.doJSON(ctx, http.MethodGet, projectPath(projectID), nil, nil, &project); err != nil {
		return nil, err
	}

	return &project, nil
}

func (c *client) UploadDataset(ctx context.Context, input *UploadDatasetInput) (*UploadResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", input.Filename)
	if err != nil {
		return nil, err
	}

	if _, err := io.Copy(part, input.Reader); err != nil {
		return nil, err
	}

	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, projectPath(input.ProjectID)+"/data", nil, body.Bytes())
	if err != nil {
		return nil, err
	}
	req.Header.Set(headers.ContentType, writer.FormDataContentType())

	var result UploadResult
	if err := c.do(req, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *client) ReadData(ctx context.Context, projectID uint) (*ReadDataResult, error) {
	var result ReadDataResult
	if err := c.doJSON(ctx, http.MethodPost, projectPath(projectID)+"/data/read", nil, struct{}{}, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *client) ExecuteFlow(ctx context.Context, projectID, flowID uint) (*UploadResult, error) {
	var result UploadResult
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/project/%d/udd/%d/execute", projectID, flowID), nil, nil, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *client) StartEda(ctx context.Context, input *StartEdaInput) (*models.EdaRun, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var runs []models.EdaRun
	if err := c.doJSON(ctx, http.MethodPost, projectPath(input.ProjectID)+"/eda", nil, input, &runs); err != nil {
		return nil, err
	}

	if len(runs) == 0 {
		return nil, fmt.Errorf("empty eda response")
	}

	return &runs[0], nil
}

func (c *client) GetEdaProgress(ctx context.Context, projectID uint) ([]lifecycle.Stage, error) {
	var progress []struct {
		Stages []lifecycle.Stage `json:"stages"`
	}
	if err := c.doJSON(ctx, http.MethodGet, projectPath(projectID)+"/edaprogress", nil, nil, &progress); err != nil {
		return nil, err
	}

	if len(progress) == 0 {
		return nil, nil
	}

	return progress[0].Stages, nil
}

func (c *client) GetEdas(ctx context.Context, projectID uint) ([]EdaResult, error) {
	var edas []EdaResult
	if err := c.doJSON(ctx, http.MethodGet, projectPath(projectID)+"/eda", nil, nil, &edas); err != nil {
		return nil, err
	}

	return edas, nil
}

func (c *client) DownloadEdaSummary(ctx context.Context, edaID uint) (io.ReadCloser, error) {
	req, err := c.newRequest(ctx, http.MethodGet, fmt.Sprintf("/api/eda/%d/edaSummary/download", edaID), nil, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.send(req)
	if err != nil {
		return nil, err
	}

	return resp.Body, nil
}

func (c *client) StartTraining(ctx context.Context, input *StartTrainingInput) (*models.TrainingRun, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var run models.TrainingRun
	if err := c.doJSON(ctx, http.MethodPost, projectPath(input.ProjectID)+"/trainmodel", nil, input, &run); err != nil {
		return nil, err
	}

	return &run, nil
}

func (c *client) GetCorrelation(ctx context.Context, input *GetCorrelationInput) (*models.Job, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var job models.Job
	if err := c.doJSON(ctx, http.MethodPost, projectPath(input.ProjectID)+"/trainmodel/correlation", nil, input, &job); err != nil {
		return nil, err
	}

	return &job, nil
}

func (c *client) ListModels(ctx context.Context, projectID uint) ([]models.TrainingRun, error) {
	var runs []models.TrainingRun
	if err := c.doJSON(ctx, http.MethodGet, projectPath(projectID)+"/trainmodel", nil, nil, &runs); err != nil {
		return nil, err
	}

	return runs, nil
}

func (c *client) GetAlgorithms(ctx context.Context, input *GetAlgorithmsInput) ([]catalog.Algorithm, error) {
	query := url.Values{}
	if input != nil {
		if input.Type != "" {
			query.Set("type", string(input.Type))
		}

		if input.Multilabel != nil {
			query.Set("multilabel", strconv.FormatBool(*input.Multilabel))
		}
	}

	var algorithms []catalog.Algorithm
	if err := c.doJSON(ctx, http.MethodGet, "/api/algorithms", query, nil, &algorithms); err != nil {
		return nil, err
	}

	return algorithms, nil
}

func (c *client) GetAlgorithmFields(ctx context.Context, algoID string) ([]catalog.Field, error) {
	if algoID == "" {
		return nil, fmt.Errorf("invalid algoID")
	}

	var fields []catalog.Field
	if err := c.doJSON(ctx, http.MethodGet, "/api/algorithms/"+url.PathEscape(algoID)+"/fields", nil, nil, &fields); err != nil {
		return nil, err
	}

	return fields, nil
}

func projectPath(projectID uint) string {
	return fmt.Sprintf("/api/projects/%d", projectID)
}

// newRequest builds a request of path under the endpoint.
func (c *client) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*retryablehttp.Request, error) {
	u, err := url.Parse(c.endpoint + path)
	if err != nil {
		return nil, err
	}

	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	return retryablehttp.NewRequestWithContext(ctx, method, u.String(), body)
}

// doJSON sends in as json and decodes the response into out.
func (c *client) doJSON(ctx context.Context, method, path string, query url.Values, in, out any) error {
	var body any
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}

		body = b
	}

	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return err
	}

	if in != nil {
		req.Header.Set(headers.ContentType, "application/json")
	}

	return c.do(req, out)
}

func (c *client) do(req *retryablehttp.Request, out any) error {
	resp, err := c.send(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		return nil
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// send returns the response of req, or a StatusError when it is not 2xx.
// The retry policy reports exhausted 5xx retries as errors together with the
// last response, which carries the message of the server.
func (c *client) send(req *retryablehttp.Request) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)
	if resp == nil {
		return nil, err
	}

	if resp.StatusCode/100 != 2 {
		defer resp.Body.Close()
		return nil, statusError(resp)
	}

	if err != nil {
		resp.Body.Close()
		return nil, err
	}

	return resp, nil
}

// statusError decodes the error body written by the studio error middleware.
func statusError(resp *http.Response) error {
	var body struct {
		Message string `json:"message"`
		Errors  string `json:"errors"`
	}

	b, err := io.ReadAll(resp.Body)
	if err == nil {
		if err := json.Unmarshal(b, &body); err != nil {
			body.Message = strings.TrimSpace(string(b))
		}
	}

	message := body.Message
	if message == "" {
		message = body.Errors
	}

	return &StatusError{
		StatusCode: resp.StatusCode,
		Message:    message,
	}
}

// retryLogger writes retryablehttp logs to the core logger.
type retryLogger struct{}

func (l *retryLogger) Error(msg string, keysAndValues ...any) {
	logger.CoreLogger.Errorw(msg, keysAndValues...)
}

func (l *retryLogger) Info(msg string, keysAndValues ...any) {
	logger.CoreLogger.Debugw(msg, keysAndValues...)
}

func (l *retryLogger) Debug(msg string, keysAndValues ...any) {
	logger.CoreLogger.Debugw(msg, keysAndValues...)
}

func (l *retryLogger) Warn(msg string, keysAndValues ...any) {
	logger.CoreLogger.Warnw(msg, keysAndValues...)
}
