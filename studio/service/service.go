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

//go:generate mockgen -destination mocks/service_mock.go -source service.go -package mocks

package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"d7y.io/studio/internal/catalog"
	"d7y.io/studio/internal/dferrors"
	logger "d7y.io/studio/internal/dflog"
	"d7y.io/studio/internal/lifecycle"
	pkgtypes "d7y.io/studio/pkg/types"
	"d7y.io/studio/studio/cache"
	"d7y.io/studio/studio/compute"
	"d7y.io/studio/studio/config"
	"d7y.io/studio/studio/database"
	"d7y.io/studio/studio/job"
	"d7y.io/studio/studio/models"
	"d7y.io/studio/studio/notification"
	"d7y.io/studio/studio/storage"
	"d7y.io/studio/studio/types"
)

type Service interface {
	CreateProject(context.Context, types.CreateProjectRequest) (*models.Project, error)
	UpdateProject(context.Context, uint, types.UpdateProjectRequest) (*models.Project, error)
	GetProject(context.Context, uint) (*models.Project, error)
	GetProjects(context.Context, types.GetProjectsQuery) ([]models.Project, int64, error)
	UploadDataset(context.Context, uint, string, int64, io.Reader) (*UploadResult, error)
	ReadData(context.Context, uint) (*storage.Preview, error)

	StartEda(context.Context, uint, types.StartEdaRequest) (*models.EdaRun, error)
	GetEdaProgress(context.Context, uint) ([]lifecycle.Stage, error)
	GetEdas(context.Context, uint) ([]EdaResult, error)
	GetEda(context.Context, uint) (*EdaResult, error)
	GetEdaSummary(context.Context, uint) ([]pkgtypes.SummaryRow, error)
	ReportEdaProgress(context.Context, uint, types.EdaProgressRequest) error
	ReportProject(context.Context, uint, types.ReportProjectRequest) error
	EdaGraph(context.Context, uint, compute.EdaGraphRequest) (string, error)
	AdvancedEdaInfo(context.Context, uint) (string, error)
	MultiUnivariate(context.Context, uint, compute.MultiUnivariateRequest) (*compute.Report, error)

	StartTraining(context.Context, uint, types.StartTrainingRequest) (*models.TrainingRun, error)
	GetCorrelation(context.Context, uint, types.CorrelationRequest) (*models.Job, error)
	ReportCorrelation(context.Context, uint, catalog.CorrelationResult) error
	ListModels(context.Context, uint) ([]models.TrainingRun, error)
	ReportTrainingProgress(context.Context, uint, uint) error
	ReportModelDone(context.Context, uint, uint, types.ModelDoneRequest) error

	CreateFlow(context.Context, types.CreateFlowRequest) (*models.Flow, error)
	UpdateFlow(context.Context, uint, types.UpdateFlowRequest) (*models.Flow, error)
	DestroyFlow(context.Context, uint) error
	GetFlow(context.Context, uint) (*models.Flow, error)
	GetFlows(context.Context, types.GetFlowsQuery) ([]models.Flow, int64, error)
	ExecuteFlow(context.Context, uint, uint) (*models.Project, error)
	ReportFlow(context.Context, uint, types.FlowReportRequest) error

	GetAlgorithms(context.Context, types.GetAlgorithmsQuery) []catalog.Algorithm
	GetAlgorithmFields(context.Context, string) ([]catalog.Field, error)

	GetJobs(context.Context, uint, types.GetJobsQuery) ([]models.Job, int64, error)
	ResumeJobs(context.Context) error
}

type service struct {
	config   *config.Config
	db       *gorm.DB
	rdb      redis.UniversalClient
	cache    *cache.Cache
	storage  storage.Storage
	compute  compute.Compute
	job      job.Job
	notifier notification.Notifier
	catalog  *catalog.Catalog
}

// Option is a functional option for service
type Option func(s *service)

// WithDatabase set the database client
func WithDatabase(database *database.Database) Option {
	return func(s *service) {
		s.db = database.DB
		s.rdb = database.RDB
	}
}

// WithCache set the cache client
func WithCache(cache *cache.Cache) Option {
	return func(s *service) {
		s.cache = cache
	}
}

// WithStorage set the dataset storage
func WithStorage(storage storage.Storage) Option {
	return func(s *service) {
		s.storage = storage
	}
}

// WithCompute set the compute service client
func WithCompute(compute compute.Compute) Option {
	return func(s *service) {
		s.compute = compute
	}
}

// WithJob set the job dispatcher
func WithJob(job job.Job) Option {
	return func(s *service) {
		s.job = job
	}
}

// WithNotifier set the event publisher
func WithNotifier(notifier notification.Notifier) Option {
	return func(s *service) {
		s.notifier = notifier
	}
}

// WithCatalog set the algorithm catalog
func WithCatalog(catalog *catalog.Catalog) Option {
	return func(s *service) {
		s.catalog = catalog
	}
}

// New returns a new Service instence
func New(cfg *config.Config, options ...Option) Service {
	s := &service{config: cfg}

	for _, opt := range options {
		opt(s)
	}

	return s
}

var (
	errDatasetRequired = dferrors.New(dferrors.CodeValidation, "Please upload file and go ahead.")
	errEdaRequired     = dferrors.New(dferrors.CodeValidation, "Please complete EDA.")
)

// callbackURL is the base of the worker callbacks of a project.
func (s *service) callbackURL(projectID uint) string {
	return fmt.Sprintf("%s/api/projects/%d", strings.TrimRight(s.config.Server.PublicAddr, "/"), projectID)
}

func (s *service) findProject(ctx context.Context, id uint) (*models.Project, error) {
	project := models.Project{}
	if err := s.db.WithContext(ctx).First(&project, id).Error; err != nil {
		return nil, err
	}

	return &project, nil
}

// lockProject reads the project row for update inside tx.
func lockProject(ctx context.Context, tx *gorm.DB, id uint) (*models.Project, error) {
	project := models.Project{}
	if err := tx.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).First(&project, id).Error; err != nil {
		return nil, err
	}

	return &project, nil
}

// transition fires event on the status of project and stores the new status
// together with values. The update only applies while the stored status is
// the one project was read with. Callers evict the cached project once tx
// is committed.
func (s *service) transition(ctx context.Context, tx *gorm.DB, project *models.Project, event lifecycle.Event, values map[string]any) error {
	from := lifecycle.Status(project.ProjectStatus)
	to, err := lifecycle.NewMachine(project.ID, from).Fire(ctx, event)
	if err != nil {
		return transitionError(err)
	}

	if values == nil {
		values = make(map[string]any, 1)
	}
	values["project_status"] = string(to)

	res := tx.WithContext(ctx).Model(&models.Project{}).Where("id = ? AND project_status = ?", project.ID, string(from)).Updates(values)
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return dferrors.Newf(dferrors.CodeConflict, "project %d left status %s during %s", project.ID, from, event)
	}

	project.ProjectStatus = string(to)
	return nil
}

// transitionError rejects events during a running job as conflicts and any
// other forbidden event as invalid.
func transitionError(err error) error {
	var transitionErr *lifecycle.TransitionError
	if errors.As(err, &transitionErr) && transitionErr.Busy() {
		return dferrors.New(dferrors.CodeConflict, err.Error())
	}

	return dferrors.New(dferrors.CodeValidation, err.Error())
}

func (s *service) evictProject(ctx context.Context, id uint) {
	if s.cache != nil {
		s.cache.EvictProject(ctx, id)
	}
}

// publish delivers an event at most once, a failure only gets logged.
func (s *service) publish(ctx context.Context, projectID uint, event string, data any) {
	if s.notifier == nil {
		return
	}

	if err := s.notifier.Publish(ctx, projectID, event, data); err != nil {
		logger.WithProject(projectID).Warnf("publish %s failed: %s", event, err.Error())
	}
}

// workerError marks a failed dispatch to the compute worker.
func workerError(err error) error {
	if dferrors.CheckError(err, dferrors.CodeWorkerUnavailable) {
		return err
	}

	return dferrors.Newf(dferrors.CodeWorkerUnavailable, "dispatch to compute worker failed: %s", err.Error())
}
