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
	"io"

	"d7y.io/studio/internal/dferrors"
	logger "d7y.io/studio/internal/dflog"
	internaljob "d7y.io/studio/internal/job"
	"d7y.io/studio/internal/lifecycle"
	"d7y.io/studio/studio/compute"
	"d7y.io/studio/studio/metrics"
	"d7y.io/studio/studio/models"
	"d7y.io/studio/studio/storage"
	"d7y.io/studio/studio/types"
)

// UploadResult is the project after an upload and whether a flow took over
// the dataset.
type UploadResult struct {
	Status         string          `json:"status"`
	ProjectDetails *models.Project `json:"projectDetails"`
}

func (s *service) CreateProject(ctx context.Context, json types.CreateProjectRequest) (*models.Project, error) {
	if json.FlowID != nil {
		if err := s.db.WithContext(ctx).First(&models.Flow{}, *json.FlowID).Error; err != nil {
			return nil, err
		}
	}

	encoding := json.FileEncoding
	if encoding == "" {
		encoding = storage.DefaultFileEncoding
	}

	project := models.Project{
		Name:          json.Name,
		ProjectStatus: string(lifecycle.StatusProjectCreated),
		FileEncoding:  encoding,
		FlowID:        json.FlowID,
	}

	if err := s.db.WithContext(ctx).Create(&project).Error; err != nil {
		return nil, err
	}

	metrics.ProjectCreatedCount.Inc()
	return &project, nil
}

func (s *service) UpdateProject(ctx context.Context, id uint, json types.UpdateProjectRequest) (*models.Project, error) {
	if json.FlowID != nil {
		if err := s.db.WithContext(ctx).First(&models.Flow{}, *json.FlowID).Error; err != nil {
			return nil, err
		}
	}

	project := models.Project{}
	if err := s.db.WithContext(ctx).First(&project, id).Updates(models.Project{
		Name:         json.Name,
		FileEncoding: json.FileEncoding,
		FlowID:       json.FlowID,
	}).Error; err != nil {
		return nil, err
	}

	s.evictProject(ctx, id)
	return &project, nil
}

func (s *service) GetProject(ctx context.Context, id uint) (*models.Project, error) {
	if s.cache == nil {
		return s.findProject(ctx, id)
	}

	return s.cache.GetProject(ctx, id, func(ctx context.Context) (*models.Project, error) {
		return s.findProject(ctx, id)
	})
}

func (s *service) GetProjects(ctx context.Context, q types.GetProjectsQuery) ([]models.Project, int64, error) {
	var count int64
	var projects []models.Project
	if err := s.db.WithContext(ctx).Scopes(models.Paginate(q.Page, q.PerPage)).Where(&models.Project{
		Name:          q.Name,
		ProjectStatus: q.ProjectStatus,
	}).Order("id DESC").Find(&projects).Limit(-1).Offset(-1).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	return projects, count, nil
}

// UploadDataset stores a dataset of a project. A project with a flow hands
// the dataset to the flow and keeps its status until the flow reports,
// otherwise the project moves to File Uploaded.
func (s *service) UploadDataset(ctx context.Context, id uint, filename string, size int64, r io.Reader) (*UploadResult, error) {
	log := logger.WithProject(id)
	if err := s.storage.CheckExtension(filename); err != nil {
		metrics.UploadFailureCount.Inc()
		return nil, err
	}

	if size > s.config.Upload.MaxSize {
		metrics.UploadFailureCount.Inc()
		return nil, dferrors.Newf(dferrors.CodeValidation, "dataset exceeds %d bytes", s.config.Upload.MaxSize)
	}

	project, err := s.findProject(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := lifecycle.CanTransition(lifecycle.Status(project.ProjectStatus), lifecycle.EventUpload); err != nil {
		metrics.UploadFailureCount.Inc()
		return nil, transitionError(err)
	}

	path, err := s.storage.SaveDataset(project.ID, filename, r)
	if err != nil {
		metrics.UploadFailureCount.Inc()
		return nil, err
	}

	if project.FlowID != nil {
		if err := s.db.WithContext(ctx).Model(project).Updates(models.Project{
			Filename:         path,
			OriginalFilename: filename,
		}).Error; err != nil {
			return nil, err
		}
		project.Filename = path
		project.OriginalFilename = filename
		s.evictProject(ctx, project.ID)

		if _, err := s.executeFlow(ctx, project, *project.FlowID); err != nil {
			return nil, err
		}

		metrics.UploadCount.Inc()
		log.Infof("dataset %s handed to flow %d", filename, *project.FlowID)
		return &UploadResult{Status: types.UploadStatusFlowStart, ProjectDetails: project}, nil
	}

	if err := s.transition(ctx, s.db, project, lifecycle.EventUpload, map[string]any{
		"filename":          path,
		"original_filename": filename,
	}); err != nil {
		if err := s.storage.RemoveDataset(path); err != nil {
			log.Warnf("remove dataset %s failed: %s", path, err.Error())
		}

		return nil, err
	}
	project.Filename = path
	project.OriginalFilename = filename
	s.evictProject(ctx, project.ID)

	metrics.UploadCount.Inc()
	log.Infof("dataset %s stored at %s", filename, path)
	return &UploadResult{Status: types.UploadStatusUploaded, ProjectDetails: project}, nil
}

// ReadData previews the dataset of a project. CSV is read locally and any
// other format by the compute service.
func (s *service) ReadData(ctx context.Context, id uint) (*storage.Preview, error) {
	project, err := s.findProject(ctx, id)
	if err != nil {
		return nil, err
	}

	if project.Filename == "" {
		return nil, errDatasetRequired
	}

	if storage.Extension(project.Filename) == storage.CSVFileExt {
		return s.storage.PreviewDataset(project.Filename, project.FileEncoding)
	}

	return s.compute.ReadData(ctx, &compute.ReadDataRequest{
		Filename:     project.Filename,
		FileEncoding: project.FileEncoding,
		Rows:         storage.PreviewRows,
	})
}

// dispatchFlow sends the flow job and starts its supervision.
func (s *service) dispatchFlow(ctx context.Context, project *models.Project, flow *models.Flow) (*models.Job, error) {
	req := &internaljob.FlowRequest{
		ProjectID:   project.ID,
		FlowID:      flow.ID,
		FlowRef:     flow.FlowRef,
		FlowType:    flow.FlowType,
		Filename:    project.Filename,
		Definition:  []byte(flow.Definition),
		CallbackURL: s.callbackURL(project.ID),
	}

	state, err := s.job.CreateFlow(ctx, req)
	if err != nil {
		return nil, workerError(err)
	}

	return s.createJob(ctx, internaljob.FlowJob, project.ID, flow.ID, req, state)
}
