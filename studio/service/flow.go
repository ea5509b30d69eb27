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

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"d7y.io/studio/internal/dferrors"
	logger "d7y.io/studio/internal/dflog"
	"d7y.io/studio/internal/lifecycle"
	"d7y.io/studio/studio/models"
	"d7y.io/studio/studio/notification"
	"d7y.io/studio/studio/types"
)

func (s *service) CreateFlow(ctx context.Context, json types.CreateFlowRequest) (*models.Flow, error) {
	flow := models.Flow{
		Name:       json.FlowName,
		FlowRef:    json.FlowID,
		FlowType:   json.FlowType,
		Definition: datatypes.JSON(json.Definition),
	}

	if err := s.db.WithContext(ctx).Create(&flow).Error; err != nil {
		return nil, err
	}

	return &flow, nil
}

func (s *service) UpdateFlow(ctx context.Context, id uint, json types.UpdateFlowRequest) (*models.Flow, error) {
	flow := models.Flow{}
	if err := s.db.WithContext(ctx).First(&flow, id).Updates(models.Flow{
		Name:       json.FlowName,
		FlowRef:    json.FlowID,
		FlowType:   json.FlowType,
		Definition: datatypes.JSON(json.Definition),
	}).Error; err != nil {
		return nil, err
	}

	return &flow, nil
}

func (s *service) DestroyFlow(ctx context.Context, id uint) error {
	flow := models.Flow{}
	if err := s.db.WithContext(ctx).First(&flow, id).Error; err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Delete(&models.Flow{}, id).Error; err != nil {
		return err
	}

	return nil
}

func (s *service) GetFlow(ctx context.Context, id uint) (*models.Flow, error) {
	flow := models.Flow{}
	if err := s.db.WithContext(ctx).First(&flow, id).Error; err != nil {
		return nil, err
	}

	return &flow, nil
}

func (s *service) GetFlows(ctx context.Context, q types.GetFlowsQuery) ([]models.Flow, int64, error) {
	var count int64
	var flows []models.Flow
	if err := s.db.WithContext(ctx).Scopes(models.Paginate(q.Page, q.PerPage)).Where(&models.Flow{
		Name: q.Name,
	}).Find(&flows).Limit(-1).Offset(-1).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	return flows, count, nil
}

// ExecuteFlow binds a flow to a project and runs it on the project dataset.
func (s *service) ExecuteFlow(ctx context.Context, id, flowID uint) (*models.Project, error) {
	project, err := s.findProject(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := lifecycle.CanTransition(lifecycle.Status(project.ProjectStatus), lifecycle.EventUpload); err != nil {
		return nil, transitionError(err)
	}

	if _, err := s.executeFlow(ctx, project, flowID); err != nil {
		return nil, err
	}

	return project, nil
}

func (s *service) executeFlow(ctx context.Context, project *models.Project, flowID uint) (*models.Job, error) {
	flow, err := s.GetFlow(ctx, flowID)
	if err != nil {
		return nil, err
	}

	if project.FlowID == nil || *project.FlowID != flow.ID {
		if err := s.db.WithContext(ctx).Model(project).Update("flow_id", flow.ID).Error; err != nil {
			return nil, err
		}

		project.FlowID = &flow.ID
		s.evictProject(ctx, project.ID)
	}

	logger.WithProject(project.ID).Infof("execute flow %d", flow.ID)
	return s.dispatchFlow(ctx, project, flow)
}

// ReportFlow takes the dataset produced by a flow. A completed flow moves the
// project to File Uploaded.
func (s *service) ReportFlow(ctx context.Context, id uint, json types.FlowReportRequest) error {
	event := notification.UddFlowCompleted{
		Status: json.Status,
		File:   json.File,
		ErrMsg: json.ErrMsg,
	}

	if json.Status == notification.FlowStatusCompleted {
		if json.File == "" {
			return dferrors.New(dferrors.CodeValidation, "completed flow requires file")
		}

		if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			project, err := lockProject(ctx, tx, id)
			if err != nil {
				return err
			}

			return s.transition(ctx, tx, project, lifecycle.EventUpload, map[string]any{
				"filename": json.File,
			})
		}); err != nil {
			return err
		}
		s.evictProject(ctx, id)
	} else {
		if _, err := s.findProject(ctx, id); err != nil {
			return err
		}

		logger.WithProject(id).Warnf("flow failed: %s", json.ErrMsg)
	}

	s.publish(ctx, id, notification.EventUddFlowCompleted, event)
	return nil
}
