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

package service

import (
	"context"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"d7y.io/studio/internal/dferrors"
	logger "d7y.io/studio/internal/dflog"
	internaljob "d7y.io/studio/internal/job"
	"d7y.io/studio/internal/lifecycle"
	pkgtypes "d7y.io/studio/pkg/types"
	"d7y.io/studio/studio/compute"
	"d7y.io/studio/studio/metrics"
	"d7y.io/studio/studio/models"
	"d7y.io/studio/studio/notification"
	"d7y.io/studio/studio/types"
)

// errRunFinished is returned when a failure arrives for a run that already
// ended or was superseded.
var errRunFinished = errors.New("run is finished")

// EdaResult is an EDA run with the features that can be chosen as target.
type EdaResult struct {
	models.EdaRun
	TargetList []string `json:"targetList"`
}

func newEdaResult(eda models.EdaRun) EdaResult {
	return EdaResult{
		EdaRun:     eda,
		TargetList: eda.TargetList(),
	}
}

func (s *service) StartEda(ctx context.Context, id uint, json types.StartEdaRequest) (*models.EdaRun, error) {
	if err := pkgtypes.CheckCustomValues(json.EdaMode, json.Strategies, json.CustomEdaStrategy); err != nil {
		return nil, err
	}

	custom := make(models.JSONMap, len(json.CustomEdaStrategy))
	for feature, value := range json.CustomEdaStrategy {
		custom[feature] = value
	}

	eda := models.EdaRun{
		ProjectID:         id,
		Status:            string(lifecycle.StatusEdaStarted),
		EdaMode:           json.EdaMode,
		Strategies:        datatypes.JSONSlice[pkgtypes.FeatureStrategy](json.Strategies),
		CustomEdaStrategy: custom,
		Stages:            datatypes.JSONSlice[lifecycle.Stage]{},
	}

	var project *models.Project
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if project, err = lockProject(ctx, tx, id); err != nil {
			return err
		}

		if project.Filename == "" {
			return errDatasetRequired
		}

		if err := s.transition(ctx, tx, project, lifecycle.EventStartEda, nil); err != nil {
			return err
		}

		return tx.Create(&eda).Error
	}); err != nil {
		return nil, err
	}
	s.evictProject(ctx, project.ID)

	req := &internaljob.EdaRequest{
		ProjectID:         project.ID,
		EdaID:             eda.ID,
		Filename:          project.Filename,
		FileEncoding:      project.FileEncoding,
		EdaMode:           eda.EdaMode,
		Strategies:        json.Strategies,
		CustomEdaStrategy: json.CustomEdaStrategy,
		CallbackURL:       s.callbackURL(project.ID),
	}

	state, err := s.job.CreateEda(ctx, req)
	if err != nil {
		logger.WithProjectAndEda(project.ID, eda.ID).Errorf("dispatch eda failed: %s", err.Error())
		if err := s.finishEda(ctx, project.ID, eda.ID, lifecycle.StatusEdaFailed, models.EdaRun{Error: err.Error()}); err != nil {
			logger.WithProjectAndEda(project.ID, eda.ID).Errorf("fail eda failed: %s", err.Error())
		}

		return nil, workerError(err)
	}

	if _, err := s.createJob(ctx, internaljob.EdaJob, project.ID, eda.ID, req, state); err != nil {
		return nil, err
	}

	metrics.EdaStartedCount.WithLabelValues(eda.EdaMode).Inc()
	return &eda, nil
}

// latestEda returns the newest EDA run of a project.
func latestEda(ctx context.Context, tx *gorm.DB, projectID uint) (*models.EdaRun, error) {
	eda := models.EdaRun{}
	if err := tx.WithContext(ctx).Where(&models.EdaRun{ProjectID: projectID}).Last(&eda).Error; err != nil {
		return nil, err
	}

	return &eda, nil
}

func (s *service) GetEdaProgress(ctx context.Context, id uint) ([]lifecycle.Stage, error) {
	if _, err := s.findProject(ctx, id); err != nil {
		return nil, err
	}

	eda, err := latestEda(ctx, s.db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []lifecycle.Stage{}, nil
		}

		return nil, err
	}

	return lifecycle.NewStageWindow(eda.Stages...).Stages(), nil
}

func (s *service) GetEdas(ctx context.Context, id uint) ([]EdaResult, error) {
	if _, err := s.findProject(ctx, id); err != nil {
		return nil, err
	}

	var edas []models.EdaRun
	if err := s.db.WithContext(ctx).Where(&models.EdaRun{ProjectID: id}).Order("id DESC").Find(&edas).Error; err != nil {
		return nil, err
	}

	results := make([]EdaResult, 0, len(edas))
	for _, eda := range edas {
		results = append(results, newEdaResult(eda))
	}

	return results, nil
}

func (s *service) GetEda(ctx context.Context, edaID uint) (*EdaResult, error) {
	eda := models.EdaRun{}
	if err := s.db.WithContext(ctx).First(&eda, edaID).Error; err != nil {
		return nil, err
	}

	result := newEdaResult(eda)
	return &result, nil
}

func (s *service) GetEdaSummary(ctx context.Context, edaID uint) ([]pkgtypes.SummaryRow, error) {
	eda, err := s.GetEda(ctx, edaID)
	if err != nil {
		return nil, err
	}

	if len(eda.EdaSummary) == 0 {
		return nil, dferrors.Newf(dferrors.CodeNotFound, "eda %d has no summary", edaID)
	}

	return eda.EdaSummary, nil
}

// ReportEdaProgress appends a stage to the window of the running EDA and
// relays it to clients.
func (s *service) ReportEdaProgress(ctx context.Context, id uint, json types.EdaProgressRequest) error {
	stage := lifecycle.Stage{StageTitle: json.StageTitle, Status: json.Status}
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		eda := models.EdaRun{}
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where(&models.EdaRun{ProjectID: id}).Last(&eda).Error; err != nil {
			return err
		}

		if eda.Status != string(lifecycle.StatusEdaStarted) {
			return dferrors.Newf(dferrors.CodeValidation, "eda %d is not running", eda.ID)
		}

		window := lifecycle.NewStageWindow(eda.Stages...)
		window.Push(stage)
		return tx.Model(&eda).Update("stages", datatypes.JSONSlice[lifecycle.Stage](window.Stages())).Error
	}); err != nil {
		return err
	}

	s.publish(ctx, id, notification.EventEdaProgress, stage)
	return nil
}

// ReportProject ends the running EDA with the outcome reported by the
// worker.
func (s *service) ReportProject(ctx context.Context, id uint, json types.ReportProjectRequest) error {
	status, err := lifecycle.Parse(json.ProjectStatus)
	if err != nil {
		return dferrors.New(dferrors.CodeValidation, err.Error())
	}

	if status != lifecycle.StatusEdaCompleted && status != lifecycle.StatusEdaFailed {
		return dferrors.Newf(dferrors.CodeValidation, "eda can not end with %s", status)
	}

	return s.finishEda(ctx, id, 0, status, models.EdaRun{
		EdaSummary:           datatypes.JSONSlice[pkgtypes.SummaryRow](json.EdaSummary),
		AfterEdaDataFilePath: json.AfterEdaDataFilePath,
		CorrectedData:        datatypes.JSON(json.CorrectedData),
		TargetFeatures:       models.Array(json.TargetFeatures),
		ProblemType:          json.ProblemType,
		DatetimeColumnName:   json.DatetimeColumnName,
		CategoricalColNames:  models.Array(json.CategoricalColNames),
		Error:                json.Error,
	})
}

// finishEda moves the project out of Eda Started and stores result on the
// EDA run. edaID zero means the latest run, otherwise a run that is no
// longer the running one yields errRunFinished.
func (s *service) finishEda(ctx context.Context, id, edaID uint, status lifecycle.Status, result models.EdaRun) error {
	event := lifecycle.EventCompleteEda
	if status == lifecycle.StatusEdaFailed {
		event = lifecycle.EventFailEda
	}

	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		project, err := lockProject(ctx, tx, id)
		if err != nil {
			return err
		}

		eda, err := latestEda(ctx, tx, id)
		if err != nil {
			return err
		}

		if edaID != 0 && (eda.ID != edaID || eda.Status != string(lifecycle.StatusEdaStarted)) {
			return errRunFinished
		}

		if err := s.transition(ctx, tx, project, event, nil); err != nil {
			return err
		}

		result.Status = string(status)
		return tx.Model(eda).Updates(result).Error
	}); err != nil {
		return err
	}
	s.evictProject(ctx, id)

	logger.WithProject(id).Infof("eda finished with %s", status)
	metrics.EdaFinishedCount.WithLabelValues(string(status)).Inc()
	s.publish(ctx, id, notification.EventEdaCompleted, notification.EdaCompleted{
		ProjectStatus: string(status),
	})
	return nil
}

func (s *service) EdaGraph(ctx context.Context, id uint, json compute.EdaGraphRequest) (string, error) {
	if _, err := s.findProject(ctx, id); err != nil {
		return "", err
	}

	return s.compute.EdaGraph(ctx, &json)
}

func (s *service) AdvancedEdaInfo(ctx context.Context, id uint) (string, error) {
	project, err := s.findProject(ctx, id)
	if err != nil {
		return "", err
	}

	eda, err := latestEda(ctx, s.db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", errEdaRequired
		}

		return "", err
	}

	return s.compute.AdvancedEdaInfo(ctx, &compute.AdvancedEdaRequest{
		ProjectID:            project.ID,
		Filename:             project.Filename,
		AfterEdaDataFilePath: eda.AfterEdaDataFilePath,
		FileEncoding:         project.FileEncoding,
	})
}

func (s *service) MultiUnivariate(ctx context.Context, id uint, json compute.MultiUnivariateRequest) (*compute.Report, error) {
	if _, err := s.findProject(ctx, id); err != nil {
		return nil, err
	}

	return s.compute.MultiUnivariate(ctx, &json)
}
