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
	"encoding/json"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"d7y.io/studio/internal/catalog"
	"d7y.io/studio/internal/dferrors"
	logger "d7y.io/studio/internal/dflog"
	internaljob "d7y.io/studio/internal/job"
	"d7y.io/studio/internal/lifecycle"
	pkgtypes "d7y.io/studio/pkg/types"
	"d7y.io/studio/studio/metrics"
	"d7y.io/studio/studio/models"
	"d7y.io/studio/studio/notification"
	"d7y.io/studio/studio/types"
)

// completedEda returns the newest completed EDA run of a project.
func completedEda(ctx context.Context, tx *gorm.DB, projectID uint) (*models.EdaRun, error) {
	eda := models.EdaRun{}
	if err := tx.WithContext(ctx).Where(&models.EdaRun{
		ProjectID: projectID,
		Status:    string(lifecycle.StatusEdaCompleted),
	}).Last(&eda).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errEdaRequired
		}

		return nil, err
	}

	return &eda, nil
}

// resolveAlgorithms maps the requested algorithms to catalog ids. Display
// names are accepted for clients that still send them.
func (s *service) resolveAlgorithms(algorithms []string) ([]string, error) {
	ids := make([]string, 0, len(algorithms))
	seen := make(map[string]struct{}, len(algorithms))
	for _, algorithm := range algorithms {
		id := algorithm
		if _, err := s.catalog.Algorithm(id); err != nil {
			found, ok := s.catalog.LookupName(algorithm)
			if !ok {
				return nil, dferrors.New(dferrors.CodeValidation, err.Error())
			}

			id = found.ID
		}

		if _, ok := seen[id]; ok {
			continue
		}

		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	return ids, nil
}

func (s *service) StartTraining(ctx context.Context, id uint, json types.StartTrainingRequest) (*models.TrainingRun, error) {
	if err := pkgtypes.CheckTrainingSelection(json.DepVariable, json.IndepVariable, json.Algorithms); err != nil {
		return nil, err
	}

	algorithms, err := s.resolveAlgorithms(json.Algorithms)
	if err != nil {
		return nil, err
	}

	prefs, err := s.catalog.MergePreferences(algorithms, json.HptPreference)
	if err != nil {
		return nil, dferrors.New(dferrors.CodeValidation, err.Error())
	}

	validation := pkgtypes.NewCVStrategy()
	if json.ValidationStrategy != nil {
		validation = json.ValidationStrategy.Normalize()
	}

	scaling := json.FeatureScaling
	if scaling == "" {
		scaling = pkgtypes.FeatureScalingNone
	}

	run := models.TrainingRun{
		ProjectID:          id,
		Status:             string(lifecycle.StatusTrainingStarted),
		DepVariable:        json.DepVariable,
		IndepVariable:      models.Array(pkgtypes.IndependentVariables(json.DepVariable, json.IndepVariable)),
		Algorithms:         models.Array(algorithms),
		ValidationStrategy: datatypes.NewJSONType(validation),
		HptPreference:      datatypes.JSONSlice[catalog.Preference](prefs),
		FeatureScaling:     scaling,
		Results:            datatypes.JSONSlice[models.ModelResult]{},
	}

	var (
		project *models.Project
		eda     *models.EdaRun
	)
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if project, err = lockProject(ctx, tx, id); err != nil {
			return err
		}

		if eda, err = completedEda(ctx, tx, id); err != nil {
			return err
		}

		if err := pkgtypes.CheckModeStrategies(eda.EdaSummary); err != nil {
			return err
		}

		if err := s.transition(ctx, tx, project, lifecycle.EventStartTraining, nil); err != nil {
			return err
		}

		run.EdaRunID = eda.ID
		return tx.Create(&run).Error
	}); err != nil {
		return nil, err
	}
	s.evictProject(ctx, project.ID)

	filename := eda.AfterEdaDataFilePath
	if filename == "" {
		filename = project.Filename
	}

	reqs := make([]*internaljob.TrainRequest, 0, len(prefs))
	for _, pref := range prefs {
		reqs = append(reqs, &internaljob.TrainRequest{
			ProjectID:          project.ID,
			ModelID:            run.ID,
			Filename:           filename,
			DepVariable:        run.DepVariable,
			IndepVariable:      run.IndepVariable,
			Algorithm:          pref,
			ValidationStrategy: validation,
			FeatureScaling:     scaling,
			CallbackURL:        s.callbackURL(project.ID),
		})
	}

	log := logger.WithProjectAndModel(project.ID, run.ID)
	state, err := s.job.CreateTraining(ctx, reqs)
	if err != nil {
		log.Errorf("dispatch training failed: %s", err.Error())
		if err := s.failMissingModels(ctx, project.ID, run.ID, err.Error()); err != nil {
			log.Errorf("fail training failed: %s", err.Error())
		}

		return nil, workerError(err)
	}

	if _, err := s.createJob(ctx, internaljob.TrainJob, project.ID, run.ID, map[string]any{"requests": reqs}, state); err != nil {
		return nil, err
	}

	log.Infof("training started with %d algorithms", len(reqs))
	metrics.TrainingStartedCount.Inc()
	return &run, nil
}

// GetCorrelation dispatches the hypothesis test of a target. Its result is
// delivered by ReportCorrelation.
func (s *service) GetCorrelation(ctx context.Context, id uint, json types.CorrelationRequest) (*models.Job, error) {
	project, err := s.findProject(ctx, id)
	if err != nil {
		return nil, err
	}

	if project.Filename == "" {
		return nil, errDatasetRequired
	}

	filename := project.Filename
	if eda, err := completedEda(ctx, s.db, id); err == nil && eda.AfterEdaDataFilePath != "" {
		filename = eda.AfterEdaDataFilePath
	}

	req := &internaljob.HypothesisRequest{
		ProjectID:     project.ID,
		Filename:      filename,
		FileEncoding:  project.FileEncoding,
		DepVariable:   json.DepVariable,
		IndepVariable: pkgtypes.IndependentVariables(json.DepVariable, json.IndepVariable),
		CallbackURL:   s.callbackURL(project.ID),
	}

	state, err := s.job.CreateHypothesis(ctx, req)
	if err != nil {
		return nil, workerError(err)
	}

	return s.createJob(ctx, internaljob.HypothesisJob, project.ID, 0, req, state)
}

func (s *service) ReportCorrelation(ctx context.Context, id uint, result catalog.CorrelationResult) error {
	if result.AlgoType != catalog.TypeRegression && result.AlgoType != catalog.TypeClassification {
		return dferrors.Newf(dferrors.CodeValidation, "invalid algorithm type %q", result.AlgoType)
	}

	b, err := json.Marshal(result)
	if err != nil {
		return err
	}

	project := models.Project{}
	if err := s.db.WithContext(ctx).First(&project, id).Update("correlation", datatypes.JSON(b)).Error; err != nil {
		return err
	}
	s.evictProject(ctx, id)

	s.publish(ctx, id, notification.EventHypothesisTest, result)
	return nil
}

func (s *service) ListModels(ctx context.Context, id uint) ([]models.TrainingRun, error) {
	if _, err := s.findProject(ctx, id); err != nil {
		return nil, err
	}

	var runs []models.TrainingRun
	if err := s.db.WithContext(ctx).Where(&models.TrainingRun{ProjectID: id}).Order("id DESC").Find(&runs).Error; err != nil {
		return nil, err
	}

	return runs, nil
}

func (s *service) findTrainingRun(ctx context.Context, tx *gorm.DB, id, modelID uint) (*models.TrainingRun, error) {
	run := models.TrainingRun{}
	if err := tx.WithContext(ctx).Where(&models.TrainingRun{ProjectID: id}).First(&run, modelID).Error; err != nil {
		return nil, err
	}

	return &run, nil
}

func (s *service) ReportTrainingProgress(ctx context.Context, id, modelID uint) error {
	if _, err := s.findTrainingRun(ctx, s.db, id, modelID); err != nil {
		return err
	}

	s.publish(ctx, id, notification.EventTrainingProgress, notification.TrainingProgress{})
	return nil
}

// ReportModelDone records the outcome of one algorithm. A repeated report of
// an algorithm replaces the earlier one.
func (s *service) ReportModelDone(ctx context.Context, id, modelID uint, json types.ModelDoneRequest) error {
	algoID := json.AlgoID
	if algoID == "" {
		algorithm, ok := s.catalog.LookupName(json.AlgoName)
		if !ok {
			return dferrors.Newf(dferrors.CodeValidation, "unknown algorithm %q", json.AlgoName)
		}

		algoID = algorithm.ID
	}

	algorithm, err := s.catalog.Algorithm(algoID)
	if err != nil {
		return dferrors.New(dferrors.CodeValidation, err.Error())
	}

	_, err = s.finishModels(ctx, id, modelID, []models.ModelResult{{
		AlgoID:        algorithm.ID,
		AlgoName:      algorithm.Name,
		ProjectStatus: json.ProjectStatus,
		Error:         json.Error,
		ModelMetaData: json.ModelMetaData,
		ReportedAt:    time.Now(),
	}})
	return err
}

// failMissingModels fails every algorithm of a run that has no outcome yet.
func (s *service) failMissingModels(ctx context.Context, id, modelID uint, msg string) error {
	run, err := s.findTrainingRun(ctx, s.db, id, modelID)
	if err != nil {
		return err
	}

	if run.Status != string(lifecycle.StatusTrainingStarted) {
		return errRunFinished
	}

	var results []models.ModelResult
	for _, algoID := range run.Algorithms {
		if run.Has(algoID) {
			continue
		}

		result := models.ModelResult{
			AlgoID:        algoID,
			ProjectStatus: string(lifecycle.StatusModelFailed),
			Error:         msg,
			ReportedAt:    time.Now(),
		}
		if algorithm, err := s.catalog.Algorithm(algoID); err == nil {
			result.AlgoName = algorithm.Name
		}

		results = append(results, result)
	}

	_, err = s.finishModels(ctx, id, modelID, results)
	return err
}

// finishModels stores outcomes on a running training run. Once every
// algorithm has an outcome the project moves to Model Generated if one of
// them produced a model and to Model Failed otherwise.
func (s *service) finishModels(ctx context.Context, id, modelID uint, results []models.ModelResult) (lifecycle.Status, error) {
	var final lifecycle.Status
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		project, err := lockProject(ctx, tx, id)
		if err != nil {
			return err
		}

		run := models.TrainingRun{}
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where(&models.TrainingRun{ProjectID: id}).First(&run, modelID).Error; err != nil {
			return err
		}

		if run.Status != string(lifecycle.StatusTrainingStarted) {
			return dferrors.Newf(dferrors.CodeValidation, "training %d already ended with %s", run.ID, run.Status)
		}

		for _, result := range results {
			if !run.Algorithms.Contains(result.AlgoID) {
				return dferrors.Newf(dferrors.CodeValidation, "training %d did not request %s", run.ID, result.AlgoID)
			}

			run.Record(result)
		}

		if run.Reported() {
			final = lifecycle.StatusModelFailed
			event := lifecycle.EventFailModel
			if run.Succeeded(string(lifecycle.StatusModelGenerated)) > 0 {
				final = lifecycle.StatusModelGenerated
				event = lifecycle.EventGenerateModel
			}

			if err := s.transition(ctx, tx, project, event, nil); err != nil {
				return err
			}
			run.Status = string(final)
		}

		return tx.Model(&run).Select("results", "status").Updates(&run).Error
	}); err != nil {
		return "", err
	}

	log := logger.WithProjectAndModel(id, modelID)
	for _, result := range results {
		log.Infof("algorithm %s finished with %s", result.AlgoID, result.ProjectStatus)
		metrics.ModelFinishedCount.WithLabelValues(result.AlgoID, result.ProjectStatus).Inc()
		s.publish(ctx, id, notification.EventEdaCompleted, notification.EdaCompleted{
			ProjectStatus: result.ProjectStatus,
			AlgoName:      result.AlgoName,
		})
	}

	if final != "" {
		s.evictProject(ctx, id)
		log.Infof("training finished with %s", final)
	}

	return final, nil
}
