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

//go:generate mockgen -destination mocks/api_mock.go -source api.go -package mocks

package wizard

import (
	"context"

	"d7y.io/studio/client/studioclient"
	"d7y.io/studio/internal/catalog"
	"d7y.io/studio/internal/lifecycle"
	"d7y.io/studio/studio/models"
)

// API is the part of the studio API driven by the wizard.
type API interface {
	GetProject(ctx context.Context, projectID uint) (*models.Project, error)
	UploadDataset(ctx context.Context, input *studioclient.UploadDatasetInput) (*studioclient.UploadResult, error)
	ReadData(ctx context.Context, projectID uint) (*studioclient.ReadDataResult, error)
	StartEda(ctx context.Context, input *studioclient.StartEdaInput) (*models.EdaRun, error)
	GetEdaProgress(ctx context.Context, projectID uint) ([]lifecycle.Stage, error)
	GetEdas(ctx context.Context, projectID uint) ([]studioclient.EdaResult, error)
	StartTraining(ctx context.Context, input *studioclient.StartTrainingInput) (*models.TrainingRun, error)
	GetCorrelation(ctx context.Context, input *studioclient.GetCorrelationInput) (*models.Job, error)
	ListModels(ctx context.Context, projectID uint) ([]models.TrainingRun, error)
	GetAlgorithms(ctx context.Context, input *studioclient.GetAlgorithmsInput) ([]catalog.Algorithm, error)
}
