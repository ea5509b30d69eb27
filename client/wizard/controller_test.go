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

package wizard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"d7y.io/studio/client/socket"
	"d7y.io/studio/client/studioclient"
	"d7y.io/studio/client/wizard/mocks"
	"d7y.io/studio/internal/catalog"
	"d7y.io/studio/internal/lifecycle"
	pkgtypes "d7y.io/studio/pkg/types"
	"d7y.io/studio/studio/models"
	"d7y.io/studio/studio/notification"
	"d7y.io/studio/studio/storage"
	"d7y.io/studio/studio/types"
)

const projectID uint = 1

var events = []string{
	notification.EventEdaProgress,
	notification.EventEdaCompleted,
	notification.EventTrainingProgress,
	notification.EventUddFlowCompleted,
	notification.EventHypothesisTest,
}

type notice struct {
	level   Level
	message string
}

type recordNotifier struct {
	notices []notice
}

func (r *recordNotifier) Notify(level Level, message string) {
	r.notices = append(r.notices, notice{level: level, message: message})
}

type fakeChannel struct {
	*socket.Dispatcher
	joined []uint
	left   []uint
}

func newFakeChannel() *fakeChannel {
	return &fakeChannel{Dispatcher: socket.NewDispatcher()}
}

func (f *fakeChannel) Join(projectID uint) error {
	f.joined = append(f.joined, projectID)
	return nil
}

func (f *fakeChannel) Leave(projectID uint) error {
	f.left = append(f.left, projectID)
	return nil
}

func (f *fakeChannel) emit(t *testing.T, event string, payload any) int {
	return f.emitFor(t, projectID, event, payload)
}

func (f *fakeChannel) emitFor(t *testing.T, projectID uint, event string, payload any) int {
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatal(err)
	}

	return f.Dispatch(event, projectID, data)
}

func newProject(status lifecycle.Status) *models.Project {
	project := &models.Project{
		BaseModel:        models.BaseModel{ID: projectID},
		Name:             "sales",
		ProjectStatus:    string(status),
		Filename:         "data/1/sales.csv",
		OriginalFilename: "sales.csv",
	}
	if status == lifecycle.StatusProjectCreated {
		project.Filename = ""
		project.OriginalFilename = ""
	}

	return project
}

func newAlgorithms() []catalog.Algorithm {
	return []catalog.Algorithm{
		{ID: "lr", Name: "Linear Regression", Type: catalog.TypeRegression},
		{ID: "ridge", Name: "Ridge Regression", Type: catalog.TypeRegression},
		{ID: "rf", Name: "Random Forest Classifier", Type: catalog.TypeClassification, Multilabel: true},
		{ID: "svc", Name: "Support Vector Classifier", Type: catalog.TypeClassification},
	}
}

func newPreview() *studioclient.ReadDataResult {
	preview := &studioclient.ReadDataResult{
		Head:   []string{"age", "income", "city", "joined"},
		Status: "success",
	}
	preview.PreviewData.DataFrame = []map[string]string{
		{"age": "31", "income": "5400", "city": "Pune", "joined": "2021-03-01"},
	}

	return preview
}

func newEda(mode string) studioclient.EdaResult {
	return studioclient.EdaResult{EdaRun: models.EdaRun{
		BaseModel: models.BaseModel{ID: 7},
		ProjectID: projectID,
		EdaMode:   mode,
		Strategies: []pkgtypes.FeatureStrategy{
			{FeatureName: "age", Strategy: pkgtypes.StrategyMedian},
			{FeatureName: "income", Strategy: pkgtypes.StrategyMean},
			{FeatureName: "city", Strategy: pkgtypes.StrategyMode},
			{FeatureName: "joined", Strategy: pkgtypes.StrategyMode},
		},
		EdaSummary: []pkgtypes.SummaryRow{
			{ColName: "age", DataType: pkgtypes.DataTypeNumeric, DataMissValue: "2", DataStrategy: pkgtypes.StrategyMedian},
			{ColName: "income", DataType: pkgtypes.DataTypeNumeric, DataMissValue: "0", DataStrategy: pkgtypes.StrategyMean},
			{ColName: "city", DataType: pkgtypes.DataTypeCategorical, DataMissValue: "1", DataStrategy: pkgtypes.StrategyMode},
			{ColName: "joined", DataType: pkgtypes.DataTypeDatetime, DataMissValue: "0", DataStrategy: pkgtypes.StrategyMode},
		},
		ProblemType: "regression",
	}}
}

func expectActivate(m *mocks.MockAPIMockRecorder, status lifecycle.Status) {
	m.GetProject(gomock.Any(), projectID).Return(newProject(status), nil).Times(1)
	m.GetAlgorithms(gomock.Any(), gomock.Any()).Return(newAlgorithms(), nil).Times(1)
	if status != lifecycle.StatusProjectCreated {
		m.ReadData(gomock.Any(), projectID).Return(newPreview(), nil).Times(1)
	}
}

func newController(t *testing.T, mock func(m *mocks.MockAPIMockRecorder)) (*Controller, *fakeChannel, *recordNotifier) {
	ctl := gomock.NewController(t)
	api := mocks.NewMockAPI(ctl)
	mock(api.EXPECT())

	channel := newFakeChannel()
	notifier := &recordNotifier{}
	return New(api, channel, WithNotifier(notifier)), channel, notifier
}

func activeController(t *testing.T, status lifecycle.Status, mock func(m *mocks.MockAPIMockRecorder)) (*Controller, *fakeChannel, *recordNotifier) {
	c, channel, notifier := newController(t, func(m *mocks.MockAPIMockRecorder) {
		expectActivate(m, status)
		mock(m)
	})

	if err := c.Activate(context.Background(), projectID); err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() { c.Close() })
	return c, channel, notifier
}

func TestController_Activate(t *testing.T) {
	tests := []struct {
		name   string
		mock   func(m *mocks.MockAPIMockRecorder)
		expect func(t *testing.T, c *Controller, channel *fakeChannel, notifier *recordNotifier, err error)
	}{
		{
			name: "new project",
			mock: func(m *mocks.MockAPIMockRecorder) {
				expectActivate(m, lifecycle.StatusProjectCreated)
			},
			expect: func(t *testing.T, c *Controller, channel *fakeChannel, notifier *recordNotifier, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal([]uint{projectID}, channel.joined)
				for _, event := range events {
					assert.Equal(1, channel.Len(event), event)
				}

				vm := c.ViewModel()
				assert.Equal(StepUpload, vm.Step)
				assert.False(vm.ShowLoading)
				assert.False(vm.PreviewShown)
				assert.Len(vm.EdaStages, 1)
				assert.Empty(notifier.notices)
			},
		},
		{
			name: "uploaded project builds preview",
			mock: func(m *mocks.MockAPIMockRecorder) {
				expectActivate(m, lifecycle.StatusFileUploaded)
			},
			expect: func(t *testing.T, c *Controller, channel *fakeChannel, notifier *recordNotifier, err error) {
				assert := assert.New(t)
				assert.NoError(err)

				vm := c.ViewModel()
				assert.True(vm.PreviewShown)
				assert.False(vm.ShowLoading)
				assert.Equal([]string{"age", "income", "city", "joined"}, vm.PreviewHead)
				assert.Len(vm.FeatureList, 4)
				for _, feature := range vm.FeatureList {
					assert.Equal(pkgtypes.StrategyMean, feature.Strategy)
				}
				assert.Equal(vm.FeatureList, vm.EdaAutoFeatureList)
			},
		},
		{
			name: "running eda restores progress",
			mock: func(m *mocks.MockAPIMockRecorder) {
				expectActivate(m, lifecycle.StatusEdaStarted)
				m.GetEdaProgress(gomock.Any(), projectID).Return([]lifecycle.Stage{
					{StageTitle: lifecycle.EdaStageTitles[0], Status: true},
					{StageTitle: lifecycle.EdaStageTitles[1], Status: true},
				}, nil).Times(1)
			},
			expect: func(t *testing.T, c *Controller, channel *fakeChannel, notifier *recordNotifier, err error) {
				assert := assert.New(t)
				assert.NoError(err)

				vm := c.ViewModel()
				assert.True(vm.EdaStarted)
				assert.True(vm.ShowLoading)
				assert.Equal([]lifecycle.Stage{
					{StageTitle: lifecycle.EdaStageTitles[0], Status: true},
					{StageTitle: lifecycle.EdaStageTitles[1], Status: true},
					{StageTitle: lifecycle.EdaStageTitles[2]},
				}, vm.EdaStages)
			},
		},
		{
			name: "model generation still reporting",
			mock: func(m *mocks.MockAPIMockRecorder) {
				expectActivate(m, lifecycle.StatusModelGenerated)
				m.ListModels(gomock.Any(), projectID).Return([]models.TrainingRun{
					{DepVariable: "income", Algorithms: models.Array{"lr", "ridge"}, Results: []models.ModelResult{{AlgoID: "lr"}}},
				}, nil).Times(1)
			},
			expect: func(t *testing.T, c *Controller, channel *fakeChannel, notifier *recordNotifier, err error) {
				assert := assert.New(t)
				assert.NoError(err)

				vm := c.ViewModel()
				assert.True(vm.ShowLoading)
				assert.Len(vm.PrevTraining, 1)
				assert.Equal([]notice{{level: LevelError, message: "Model generation is going on..."}}, notifier.notices)
			},
		},
		{
			name: "training in flight",
			mock: func(m *mocks.MockAPIMockRecorder) {
				expectActivate(m, lifecycle.StatusTrainingStarted)
			},
			expect: func(t *testing.T, c *Controller, channel *fakeChannel, notifier *recordNotifier, err error) {
				assert := assert.New(t)
				assert.NoError(err)

				vm := c.ViewModel()
				assert.True(vm.ShowLoading)
				assert.True(vm.TrainingStarted)
			},
		},
		{
			name: "project not found releases subscriptions",
			mock: func(m *mocks.MockAPIMockRecorder) {
				m.GetProject(gomock.Any(), projectID).Return(nil, &studioclient.StatusError{StatusCode: http.StatusNotFound, Message: "project not found"}).Times(1)
			},
			expect: func(t *testing.T, c *Controller, channel *fakeChannel, notifier *recordNotifier, err error) {
				assert := assert.New(t)
				var reqErr *RequestError
				assert.ErrorAs(err, &reqErr)
				assert.Equal("get project", reqErr.Op)
				for _, event := range events {
					assert.Equal(0, channel.Len(event), event)
				}
				assert.Equal([]uint{projectID}, channel.left)
				assert.Equal([]notice{{level: LevelError, message: "project not found"}}, notifier.notices)
				assert.ErrorIs(c.ChooseEdaMode(pkgtypes.EdaModeManual), ErrNotActive)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, channel, notifier := newController(t, tc.mock)
			err := c.Activate(context.Background(), projectID)
			defer c.Close()
			tc.expect(t, c, channel, notifier, err)
		})
	}
}

func TestController_Close(t *testing.T) {
	assert := assert.New(t)
	c, channel, _ := activeController(t, lifecycle.StatusFileUploaded, func(m *mocks.MockAPIMockRecorder) {})

	assert.NoError(c.Close())
	assert.Equal([]uint{projectID}, channel.left)
	for _, event := range events {
		assert.Equal(0, channel.Len(event), event)
	}

	assert.Equal(0, channel.emit(t, notification.EventTrainingProgress, notification.TrainingProgress{}))
	assert.Equal(ViewWizard, c.ViewModel().View)
	assert.ErrorIs(c.StartEda(context.Background()), ErrNotActive)
	assert.NoError(c.Close())
}

func TestController_OtherProjectEvents(t *testing.T) {
	assert := assert.New(t)
	c, channel, notifier := activeController(t, lifecycle.StatusEdaStarted, func(m *mocks.MockAPIMockRecorder) {
		m.GetEdaProgress(gomock.Any(), projectID).Return(nil, nil).Times(1)
	})
	assert.NoError(channel.Join(2))

	const otherProjectID uint = 2
	assert.Equal(1, channel.emitFor(t, otherProjectID, notification.EventEdaCompleted, notification.EdaCompleted{ProjectStatus: string(lifecycle.StatusEdaFailed)}))
	assert.Equal(1, channel.emitFor(t, otherProjectID, notification.EventEdaProgress, lifecycle.Stage{StageTitle: lifecycle.EdaStageTitles[0], Status: true}))
	assert.Equal(1, channel.emitFor(t, otherProjectID, notification.EventTrainingProgress, notification.TrainingProgress{}))

	vm := c.ViewModel()
	assert.True(vm.EdaStarted)
	assert.True(vm.ShowLoading)
	assert.Equal(ViewWizard, vm.View)
	assert.Equal([]lifecycle.Stage{{StageTitle: lifecycle.EdaStageTitles[0]}}, vm.EdaStages)
	assert.Empty(notifier.notices)

	channel.emit(t, notification.EventTrainingProgress, notification.TrainingProgress{})
	assert.Equal(ViewModels, c.ViewModel().View)
}

func TestController_Upload(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		mock     func(m *mocks.MockAPIMockRecorder)
		expect   func(t *testing.T, vm ViewModel, notices []notice, err error)
	}{
		{
			name:     "invalid extension",
			filename: "sales.txt",
			mock:     func(m *mocks.MockAPIMockRecorder) {},
			expect: func(t *testing.T, vm ViewModel, notices []notice, err error) {
				assert := assert.New(t)
				assert.ErrorIs(err, storage.ErrInvalidExtension)
				assert.Empty(vm.Activity)
				assert.Equal([]notice{{level: LevelError, message: storage.ErrInvalidExtension.Message}}, notices)
			},
		},
		{
			name:     "dataset uploaded",
			filename: "sales.csv",
			mock: func(m *mocks.MockAPIMockRecorder) {
				m.UploadDataset(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, input *studioclient.UploadDatasetInput) (*studioclient.UploadResult, error) {
						if input.ProjectID != projectID || input.Filename != "sales.csv" {
							return nil, fmt.Errorf("unexpected input %#v", input)
						}

						return &studioclient.UploadResult{Status: "success", ProjectDetails: newProject(lifecycle.StatusFileUploaded)}, nil
					}).Times(1)
				m.ReadData(gomock.Any(), projectID).Return(newPreview(), nil).Times(1)
			},
			expect: func(t *testing.T, vm ViewModel, notices []notice, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(lifecycle.StatusFileUploaded, vm.Status())
				assert.Len(vm.Activity, 2)
				assert.Equal(ActivityUploaded, vm.Activity[0].Key)
				assert.Equal("File uploaded", vm.Activity[0].Title)
				assert.Equal(ActivityReadFile, vm.Activity[1].Key)
				assert.Equal("Preview generated", vm.Activity[1].Title)
				assert.True(vm.PreviewShown)
				assert.False(vm.ShowLoading)
				assert.Len(vm.FeatureList, 4)
				assert.Empty(notices)
			},
		},
		{
			name:     "flow started",
			filename: "sales.zip",
			mock: func(m *mocks.MockAPIMockRecorder) {
				m.UploadDataset(gomock.Any(), gomock.Any()).Return(&studioclient.UploadResult{
					Status:         types.UploadStatusFlowStart,
					ProjectDetails: newProject(lifecycle.StatusFileUploaded),
				}, nil).Times(1)
			},
			expect: func(t *testing.T, vm ViewModel, notices []notice, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.True(vm.ShowLoading)
				assert.Len(vm.Activity, 1)
				assert.Equal("File uploaded", vm.Activity[0].Title)
				assert.Equal([]notice{{level: LevelSuccess, message: "Flow execution started, please wait!"}}, notices)
			},
		},
		{
			name:     "upload rejected",
			filename: "sales.csv",
			mock: func(m *mocks.MockAPIMockRecorder) {
				m.UploadDataset(gomock.Any(), gomock.Any()).Return(nil, &studioclient.StatusError{
					StatusCode: http.StatusBadRequest,
					Message:    "Uploaded file is empty.",
				}).Times(1)
			},
			expect: func(t *testing.T, vm ViewModel, notices []notice, err error) {
				assert := assert.New(t)
				var reqErr *RequestError
				assert.ErrorAs(err, &reqErr)
				assert.False(vm.ShowLoading)
				assert.Len(vm.Activity, 1)
				assert.Equal(ActivityFailed, vm.Activity[0].Key)
				assert.Equal("File uploaded failed", vm.Activity[0].Title)
				assert.Equal([]notice{{level: LevelError, message: "Uploaded file is empty."}}, notices)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, _, notifier := activeController(t, lifecycle.StatusProjectCreated, tc.mock)
			err := c.Upload(context.Background(), tc.filename, bytes.NewBufferString("age,income\n31,5400\n"))
			tc.expect(t, c.ViewModel(), notifier.notices, err)
		})
	}
}

func TestController_StartEda(t *testing.T) {
	tests := []struct {
		name   string
		status lifecycle.Status
		run    func(c *Controller) error
		mock   func(m *mocks.MockAPIMockRecorder)
		expect func(t *testing.T, vm ViewModel, notices []notice, err error)
	}{
		{
			name:   "manual custom strategy without value",
			status: lifecycle.StatusFileUploaded,
			run: func(c *Controller) error {
				if err := c.ChooseEdaMode(pkgtypes.EdaModeManual); err != nil {
					return err
				}

				if err := c.ChangeStrategy("age", pkgtypes.StrategyCustom); err != nil {
					return err
				}

				return c.StartEda(context.Background())
			},
			mock: func(m *mocks.MockAPIMockRecorder) {},
			expect: func(t *testing.T, vm ViewModel, notices []notice, err error) {
				assert := assert.New(t)
				assert.ErrorIs(err, pkgtypes.ErrEmptyCustomValue)
				assert.False(vm.EdaStarted)
				assert.Equal(lifecycle.StatusFileUploaded, vm.Status())
				assert.Equal([]notice{{level: LevelAlert, message: "Custom field value cannot be empty!"}}, notices)
			},
		},
		{
			name:   "manual custom strategy",
			status: lifecycle.StatusFileUploaded,
			run: func(c *Controller) error {
				if err := c.ChooseEdaMode(pkgtypes.EdaModeManual); err != nil {
					return err
				}

				if err := c.ChangeStrategy("age", pkgtypes.StrategyCustom); err != nil {
					return err
				}

				if err := c.SetCustomValue("age", "42"); err != nil {
					return err
				}

				return c.StartEda(context.Background())
			},
			mock: func(m *mocks.MockAPIMockRecorder) {
				m.StartEda(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, input *studioclient.StartEdaInput) (*models.EdaRun, error) {
						if input.EdaMode != pkgtypes.EdaModeManual || input.CustomEdaStrategy["age"] != "42" {
							return nil, fmt.Errorf("unexpected input %#v", input)
						}

						if input.Strategies[0].Strategy != pkgtypes.StrategyCustom {
							return nil, fmt.Errorf("unexpected strategies %#v", input.Strategies)
						}

						return &models.EdaRun{}, nil
					}).Times(1)
			},
			expect: func(t *testing.T, vm ViewModel, notices []notice, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(lifecycle.StatusEdaStarted, vm.Status())
				assert.True(vm.EdaStarted)
				assert.True(vm.DisableStartEda)
				assert.True(vm.ShowLoading)
				assert.False(vm.HideEdaSummaryTab)
				assert.Equal(ActivityEdaManual, vm.Activity[len(vm.Activity)-1].Key)
				assert.Equal("Performing manual EDA", vm.Activity[len(vm.Activity)-1].Title)
				assert.Empty(notices)
			},
		},
		{
			name:   "auto mode sends default strategies",
			status: lifecycle.StatusFileUploaded,
			run: func(c *Controller) error {
				return c.StartEda(context.Background())
			},
			mock: func(m *mocks.MockAPIMockRecorder) {
				m.StartEda(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, input *studioclient.StartEdaInput) (*models.EdaRun, error) {
						if input.EdaMode != pkgtypes.EdaModeAuto || input.CustomEdaStrategy != nil || len(input.Strategies) != 4 {
							return nil, fmt.Errorf("unexpected input %#v", input)
						}

						return &models.EdaRun{}, nil
					}).Times(1)
			},
			expect: func(t *testing.T, vm ViewModel, notices []notice, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal("Performing auto EDA", vm.Activity[len(vm.Activity)-1].Title)
			},
		},
		{
			name:   "eda already running",
			status: lifecycle.StatusFileUploaded,
			run: func(c *Controller) error {
				return c.StartEda(context.Background())
			},
			mock: func(m *mocks.MockAPIMockRecorder) {
				m.StartEda(gomock.Any(), gomock.Any()).Return(nil, &studioclient.StatusError{
					StatusCode: http.StatusConflict,
					Message:    "EDA is already in progress",
				}).Times(1)
			},
			expect: func(t *testing.T, vm ViewModel, notices []notice, err error) {
				assert := assert.New(t)
				var reqErr *RequestError
				assert.ErrorAs(err, &reqErr)
				assert.Equal(lifecycle.StatusFileUploaded, vm.Status())
				assert.False(vm.EdaStarted)
				assert.False(vm.ShowLoading)
				assert.False(vm.DisableStartEda)
				assert.Equal([]notice{{level: LevelError, message: "EDA is already in progress"}}, notices)
			},
		},
		{
			name:   "request failed without message",
			status: lifecycle.StatusFileUploaded,
			run: func(c *Controller) error {
				return c.StartEda(context.Background())
			},
			mock: func(m *mocks.MockAPIMockRecorder) {
				m.StartEda(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused")).Times(1)
			},
			expect: func(t *testing.T, vm ViewModel, notices []notice, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "start eda: connection refused")
				assert.Equal([]notice{{level: LevelError, message: "Oops!, eda could not start"}}, notices)
			},
		},
		{
			name:   "training in flight",
			status: lifecycle.StatusTrainingStarted,
			run: func(c *Controller) error {
				return c.StartEda(context.Background())
			},
			mock: func(m *mocks.MockAPIMockRecorder) {},
			expect: func(t *testing.T, vm ViewModel, notices []notice, err error) {
				assert := assert.New(t)
				var transitionErr *lifecycle.TransitionError
				assert.ErrorAs(err, &transitionErr)
				assert.True(transitionErr.Busy())
				assert.False(vm.EdaStarted)
				assert.Len(notices, 1)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, _, notifier := activeController(t, tc.status, tc.mock)
			err := tc.run(c)
			tc.expect(t, c.ViewModel(), notifier.notices, err)
		})
	}
}

func TestController_StartEdaRollback(t *testing.T) {
	assert := assert.New(t)
	c, _, notifier := activeController(t, lifecycle.StatusFileUploaded, func(m *mocks.MockAPIMockRecorder) {
		m.StartEda(gomock.Any(), gomock.Any()).Return(nil, &studioclient.StatusError{
			StatusCode: http.StatusConflict,
			Message:    "EDA is already in progress",
		}).Times(1)
	})

	c.mu.Lock()
	c.stages = lifecycle.NewStageWindow(
		lifecycle.Stage{StageTitle: lifecycle.EdaStageTitles[0], Status: true},
		lifecycle.Stage{StageTitle: lifecycle.EdaStageTitles[1], Status: true},
	)
	c.syncStages()
	c.vm.HideEdaSummaryTab = true
	c.vm.pushActivity(ActivityEdaAuto, "EDA completed", "")
	c.mu.Unlock()
	before := c.ViewModel()

	var reqErr *RequestError
	assert.ErrorAs(c.StartEda(context.Background()), &reqErr)

	vm := c.ViewModel()
	assert.Equal(before.EdaStages, vm.EdaStages)
	assert.Equal(before.EdaStages, c.stages.Stages())
	assert.Equal(before.Activity, vm.Activity)
	assert.Equal("EDA completed", vm.Activity[len(vm.Activity)-1].Title)
	assert.True(vm.HideEdaSummaryTab)
	assert.False(vm.EdaStarted)
	assert.Equal([]notice{{level: LevelError, message: "EDA is already in progress"}}, notifier.notices)
}

func TestController_EdaStrategies(t *testing.T) {
	assert := assert.New(t)
	c, _, _ := activeController(t, lifecycle.StatusFileUploaded, func(m *mocks.MockAPIMockRecorder) {})

	assert.Error(c.ChooseEdaMode("semi"))
	assert.Error(c.ChangeStrategy("age", "Average"))
	assert.Error(c.ChangeStrategy("height", pkgtypes.StrategyMode))
	assert.Error(c.SetCustomValue("age", "42"))

	assert.NoError(c.ChooseEdaMode(pkgtypes.EdaModeManual))
	assert.NoError(c.ChangeStrategy("age", pkgtypes.StrategyCustom))
	assert.NoError(c.SetCustomValue("age", "42"))
	assert.Equal(map[string]string{"age": "42"}, c.ViewModel().CustomEdaStrategy)

	assert.NoError(c.ChangeStrategy("age", pkgtypes.StrategyMedian))
	vm := c.ViewModel()
	assert.Empty(vm.CustomEdaStrategy)
	assert.Equal("", vm.FeatureList[0].CustomValue)

	assert.NoError(c.ChangeStrategy("age", pkgtypes.StrategyCustom))
	assert.NoError(c.SetCustomValue("age", "42"))
	assert.NoError(c.ChooseEdaMode(pkgtypes.EdaModeAuto))
	vm = c.ViewModel()
	assert.Empty(vm.CustomEdaStrategy)
	assert.False(vm.ManualEdaMode)
}

func TestController_EdaProgress(t *testing.T) {
	assert := assert.New(t)
	c, channel, _ := activeController(t, lifecycle.StatusFileUploaded, func(m *mocks.MockAPIMockRecorder) {
		m.StartEda(gomock.Any(), gomock.Any()).Return(&models.EdaRun{}, nil).Times(1)
	})
	assert.NoError(c.StartEda(context.Background()))

	for i := 0; i < 7; i++ {
		title := fmt.Sprintf("stage-%d", i)
		assert.Equal(1, channel.emit(t, notification.EventEdaProgress, lifecycle.Stage{StageTitle: title, Status: true}))

		stages := c.ViewModel().EdaStages
		assert.LessOrEqual(len(stages), lifecycle.MaxStages)
		assert.Contains(stages, lifecycle.Stage{StageTitle: title, Status: true})
	}
}

func TestController_EdaCompleted(t *testing.T) {
	tests := []struct {
		name    string
		payload notification.EdaCompleted
		mock    func(m *mocks.MockAPIMockRecorder)
		expect  func(t *testing.T, vm ViewModel, notices []notice)
	}{
		{
			name:    "eda failed",
			payload: notification.EdaCompleted{ProjectStatus: string(lifecycle.StatusEdaFailed)},
			mock: func(m *mocks.MockAPIMockRecorder) {
				m.GetProject(gomock.Any(), projectID).Return(newProject(lifecycle.StatusEdaFailed), nil).Times(1)
			},
			expect: func(t *testing.T, vm ViewModel, notices []notice) {
				assert := assert.New(t)
				assert.Equal(lifecycle.StatusEdaFailed, vm.Status())
				assert.False(vm.ShowLoading)
				assert.False(vm.EdaStarted)
				assert.False(vm.DisableStartEda)
				assert.False(vm.ShowEdaSummary)
				assert.Equal([]notice{{level: LevelError, message: "Oops EDA failed, please check the data and try again"}}, notices)
			},
		},
		{
			name:    "eda completed",
			payload: notification.EdaCompleted{ProjectStatus: string(lifecycle.StatusEdaCompleted)},
			mock: func(m *mocks.MockAPIMockRecorder) {
				m.GetProject(gomock.Any(), projectID).Return(newProject(lifecycle.StatusEdaCompleted), nil).Times(1)
				m.GetEdas(gomock.Any(), projectID).Return([]studioclient.EdaResult{newEda(pkgtypes.EdaModeAuto)}, nil).Times(1)
			},
			expect: func(t *testing.T, vm ViewModel, notices []notice) {
				assert := assert.New(t)
				assert.Equal(lifecycle.StatusEdaCompleted, vm.Status())
				assert.False(vm.ShowLoading)
				assert.False(vm.EdaStarted)
				assert.False(vm.DisableStartEda)
				assert.True(vm.ShowEdaSummary)
				assert.Equal([]string{"age", "income", "city"}, vm.TargetList)
				assert.Equal([]string{"age", "income", "city"}, vm.CorrectedDataHeading)
				assert.Equal(pkgtypes.StrategyMedian, vm.FeatureList[0].Strategy)
				assert.Equal("Auto EDA completed", vm.Activity[len(vm.Activity)-1].Title)
				assert.Equal([]notice{{level: LevelSuccess, message: "Eda completed now, you can start training."}}, notices)
			},
		},
		{
			name:    "refresh failure keeps project",
			payload: notification.EdaCompleted{ProjectStatus: string(lifecycle.StatusEdaFailed)},
			mock: func(m *mocks.MockAPIMockRecorder) {
				m.GetProject(gomock.Any(), projectID).Return(nil, errors.New("connection reset")).Times(1)
			},
			expect: func(t *testing.T, vm ViewModel, notices []notice) {
				assert := assert.New(t)
				assert.Equal(lifecycle.StatusEdaStarted, vm.Status())
				assert.False(vm.EdaStarted)
				assert.Len(notices, 1)
			},
		},
		{
			name:    "model failed",
			payload: notification.EdaCompleted{ProjectStatus: string(lifecycle.StatusModelFailed), AlgoName: "Linear Regression"},
			mock: func(m *mocks.MockAPIMockRecorder) {
				m.GetProject(gomock.Any(), projectID).Return(newProject(lifecycle.StatusModelFailed), nil).Times(1)
			},
			expect: func(t *testing.T, vm ViewModel, notices []notice) {
				assert := assert.New(t)
				assert.False(vm.TrainingStarted)
				assert.False(vm.ShowLoading)
				assert.Equal([]notice{{level: LevelError, message: "Oops training failed for Linear Regression"}}, notices)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			c, channel, notifier := activeController(t, lifecycle.StatusFileUploaded, func(m *mocks.MockAPIMockRecorder) {
				m.StartEda(gomock.Any(), gomock.Any()).Return(&models.EdaRun{}, nil).Times(1)
				tc.mock(m)
			})
			assert.NoError(c.StartEda(context.Background()))

			assert.Equal(1, channel.emit(t, notification.EventEdaCompleted, tc.payload))
			tc.expect(t, c.ViewModel(), notifier.notices)
		})
	}
}

func TestController_UddFlowCompleted(t *testing.T) {
	assert := assert.New(t)
	c, channel, notifier := activeController(t, lifecycle.StatusProjectCreated, func(m *mocks.MockAPIMockRecorder) {
		m.UploadDataset(gomock.Any(), gomock.Any()).Return(&studioclient.UploadResult{
			Status:         types.UploadStatusFlowStart,
			ProjectDetails: newProject(lifecycle.StatusProjectCreated),
		}, nil).Times(1)
		m.GetProject(gomock.Any(), projectID).Return(newProject(lifecycle.StatusFileUploaded), nil).Times(1)
		m.ReadData(gomock.Any(), projectID).Return(newPreview(), nil).Times(1)
	})
	assert.NoError(c.Upload(context.Background(), "sales.zip", bytes.NewBufferString("PK")))

	failed := notification.UddFlowCompleted{Status: notification.FlowStatusFailed, ErrMsg: "flow 3 failed"}
	for i := 1; i <= 2; i++ {
		channel.emit(t, notification.EventUddFlowCompleted, failed)

		vm := c.ViewModel()
		assert.Equal(i, vm.FlowFailedCount)
		assert.False(vm.ShowLoading)
		assert.Len(vm.Activity, 2)
		assert.Equal("Flow execution failed", vm.Activity[1].Title)
	}
	assert.Equal([]notice{
		{level: LevelSuccess, message: "Flow execution started, please wait!"},
		{level: LevelError, message: "Error while executing flow"},
	}, notifier.notices)

	channel.emit(t, notification.EventUddFlowCompleted, notification.UddFlowCompleted{
		Status: notification.FlowStatusCompleted,
		File:   "data/1/flow-output.csv",
	})

	vm := c.ViewModel()
	assert.Equal(0, vm.FlowFailedCount)
	assert.Equal(lifecycle.StatusFileUploaded, vm.Status())
	assert.Equal("data/1/flow-output.csv", vm.Project.Filename)
	assert.True(vm.PreviewShown)
	assert.False(vm.ShowLoading)
	assert.Len(vm.Activity, 3)
	assert.Equal("Preview generated", vm.Activity[2].Title)
}

func TestController_HypothesisTest(t *testing.T) {
	tests := []struct {
		name     string
		result   catalog.CorrelationResult
		selected []string
		expect   func(t *testing.T, vm ViewModel)
	}{
		{
			name:     "regression",
			result:   catalog.CorrelationResult{AlgoType: "Regression", TargetVarType: "Numeric"},
			selected: []string{"lr"},
			expect: func(t *testing.T, vm ViewModel) {
				assert := assert.New(t)
				assert.Equal(catalog.TypeRegression, vm.CorrelationAlgoType)
				assert.Len(vm.ModelAlgorithms, 2)
				assert.Equal([]string{"lr"}, vm.SelectedAlgorithms)
				assert.Equal("Numeric", vm.TargetVarType)
			},
		},
		{
			name:     "classification prunes selection",
			result:   catalog.CorrelationResult{AlgoType: "Classification", IsImbalanced: true},
			selected: []string{"lr"},
			expect: func(t *testing.T, vm ViewModel) {
				assert := assert.New(t)
				assert.Equal([]string{"rf", "svc"}, algorithmIDs(vm.ModelAlgorithms))
				assert.Empty(vm.SelectedAlgorithms)
				assert.True(vm.IsImbalanced)
			},
		},
		{
			name:   "multilabel classification",
			result: catalog.CorrelationResult{AlgoType: "classification", IsMultilabel: true},
			expect: func(t *testing.T, vm ViewModel) {
				assert := assert.New(t)
				assert.Equal([]string{"rf"}, algorithmIDs(vm.ModelAlgorithms))
				assert.True(vm.CorrelationIsMultilabel)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			c, channel, _ := activeController(t, lifecycle.StatusFileUploaded, func(m *mocks.MockAPIMockRecorder) {})

			channel.emit(t, notification.EventHypothesisTest, catalog.CorrelationResult{AlgoType: catalog.TypeRegression})
			assert.Error(c.SelectAlgorithms([]string{"rf"}))
			assert.NoError(c.SelectAlgorithms(tc.selected))

			channel.emit(t, notification.EventHypothesisTest, tc.result)
			vm := c.ViewModel()
			assert.False(vm.ShowLoading)
			tc.expect(t, vm)
		})
	}
}

func algorithmIDs(algorithms []catalog.Algorithm) []string {
	var ids []string
	for _, algorithm := range algorithms {
		ids = append(ids, algorithm.ID)
	}

	return ids
}

func TestController_GotoEda(t *testing.T) {
	tests := []struct {
		name   string
		status lifecycle.Status
		eda    func() studioclient.EdaResult
		expect func(t *testing.T, step Step, vm ViewModel, notices []notice, err error)
	}{
		{
			name:   "no dataset",
			status: lifecycle.StatusProjectCreated,
			expect: func(t *testing.T, step Step, vm ViewModel, notices []notice, err error) {
				assert := assert.New(t)
				assert.Error(err)
				assert.Equal(StepUpload, step)
				assert.Equal([]notice{{level: LevelError, message: "Please upload file and go ahead."}}, notices)
			},
		},
		{
			name:   "dataset without eda",
			status: lifecycle.StatusFileUploaded,
			expect: func(t *testing.T, step Step, vm ViewModel, notices []notice, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(StepEda, step)
				assert.Nil(vm.EdaData)
			},
		},
		{
			name:   "targets from the server",
			status: lifecycle.StatusEdaCompleted,
			eda: func() studioclient.EdaResult {
				eda := newEda(pkgtypes.EdaModeManual)
				eda.TargetList = []string{"income"}
				return eda
			},
			expect: func(t *testing.T, step Step, vm ViewModel, notices []notice, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(StepEda, step)
				assert.Equal([]string{"income"}, vm.TargetList)
				assert.True(vm.ManualEdaMode)
				assert.Equal(pkgtypes.EdaModeManual, vm.EdaMode)
			},
		},
		{
			name:   "targets chosen by the worker",
			status: lifecycle.StatusEdaCompleted,
			eda: func() studioclient.EdaResult {
				eda := newEda(pkgtypes.EdaModeAuto)
				eda.TargetFeatures = models.Array{"age", "income"}
				return eda
			},
			expect: func(t *testing.T, step Step, vm ViewModel, notices []notice, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal([]string{"age", "income"}, vm.TargetList)
				assert.False(vm.ManualEdaMode)
			},
		},
		{
			name:   "failed eda hides summary",
			status: lifecycle.StatusEdaFailed,
			eda: func() studioclient.EdaResult {
				return newEda(pkgtypes.EdaModeAuto)
			},
			expect: func(t *testing.T, step Step, vm ViewModel, notices []notice, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.False(vm.ShowEdaSummary)
				assert.False(vm.DisableStartEda)
				assert.Equal([]string{"age", "income", "city"}, vm.TargetList)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, _, notifier := activeController(t, tc.status, func(m *mocks.MockAPIMockRecorder) {
				if tc.eda != nil {
					m.GetEdas(gomock.Any(), projectID).Return([]studioclient.EdaResult{tc.eda()}, nil).Times(1)
				}
			})

			step, err := c.GotoEda(context.Background())
			tc.expect(t, step, c.ViewModel(), notifier.notices, err)
		})
	}
}

func TestController_GotoModelTraining(t *testing.T) {
	tests := []struct {
		name   string
		status lifecycle.Status
		expect func(t *testing.T, step Step, notices []notice, err error)
	}{
		{
			name:   "no dataset",
			status: lifecycle.StatusProjectCreated,
			expect: func(t *testing.T, step Step, notices []notice, err error) {
				assert := assert.New(t)
				assert.Error(err)
				assert.Equal(StepUpload, step)
			},
		},
		{
			name:   "eda not run",
			status: lifecycle.StatusFileUploaded,
			expect: func(t *testing.T, step Step, notices []notice, err error) {
				assert := assert.New(t)
				assert.ErrorIs(err, errEdaRequired)
				assert.Equal(StepEda, step)
				assert.Equal([]notice{{level: LevelError, message: "Please complete EDA."}}, notices)
			},
		},
		{
			name:   "eda running",
			status: lifecycle.StatusEdaStarted,
			expect: func(t *testing.T, step Step, notices []notice, err error) {
				assert := assert.New(t)
				assert.Error(err)
				assert.Equal(StepEda, step)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, _, notifier := activeController(t, tc.status, func(m *mocks.MockAPIMockRecorder) {
				m.GetEdaProgress(gomock.Any(), projectID).Return(nil, nil).AnyTimes()
			})

			step, err := c.GotoModelTraining(context.Background())
			tc.expect(t, step, notifier.notices, err)
		})
	}
}

func TestController_Wizard(t *testing.T) {
	assert := assert.New(t)
	c, channel, notifier := activeController(t, lifecycle.StatusFileUploaded, func(m *mocks.MockAPIMockRecorder) {
		m.StartEda(gomock.Any(), gomock.Any()).Return(&models.EdaRun{}, nil).Times(1)
		m.GetProject(gomock.Any(), projectID).Return(newProject(lifecycle.StatusEdaCompleted), nil).Times(1)
		m.GetEdas(gomock.Any(), projectID).Return([]studioclient.EdaResult{newEda(pkgtypes.EdaModeAuto)}, nil).Times(2)
		m.GetCorrelation(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, input *studioclient.GetCorrelationInput) (*models.Job, error) {
				if input.DepVariable != "income" {
					return nil, fmt.Errorf("unexpected target %q", input.DepVariable)
				}

				if fmt.Sprint(input.IndepVariable) != "[age city joined]" {
					return nil, fmt.Errorf("unexpected features %v", input.IndepVariable)
				}

				return &models.Job{}, nil
			}).Times(1)
		m.StartTraining(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, input *studioclient.StartTrainingInput) (*models.TrainingRun, error) {
				if fmt.Sprint(input.IndepVariable) != "[age city]" || fmt.Sprint(input.Algorithms) != "[lr]" {
					return nil, fmt.Errorf("unexpected input %#v", input)
				}

				if input.ValidationStrategy.Name != pkgtypes.ValidationTrainValidationHoldout {
					return nil, fmt.Errorf("unexpected validation strategy %#v", input.ValidationStrategy)
				}

				return &models.TrainingRun{}, nil
			}).Times(1)
		m.GetProject(gomock.Any(), projectID).Return(newProject(lifecycle.StatusModelGenerated), nil).Times(1)
	})

	step, err := c.GotoEda(context.Background())
	assert.NoError(err)
	assert.Equal(StepEda, step)

	assert.NoError(c.StartEda(context.Background()))
	channel.emit(t, notification.EventEdaProgress, lifecycle.Stage{StageTitle: lifecycle.EdaStageTitles[0], Status: true})
	channel.emit(t, notification.EventEdaCompleted, notification.EdaCompleted{ProjectStatus: string(lifecycle.StatusEdaCompleted)})

	vm := c.ViewModel()
	assert.Equal(lifecycle.StatusEdaCompleted, vm.Status())
	assert.Len(vm.TargetList, 3)

	step, err = c.GotoModelTraining(context.Background())
	assert.NoError(err)
	assert.Equal(StepTraining, step)

	assert.Error(c.SelectTarget(context.Background(), "height"))
	assert.NoError(c.SelectTarget(context.Background(), "income"))
	assert.True(c.ViewModel().ShowLoading)
	channel.emit(t, notification.EventHypothesisTest, catalog.CorrelationResult{AlgoType: catalog.TypeRegression})
	assert.NoError(c.SelectAlgorithms([]string{"lr"}))

	notifier.notices = nil
	assert.ErrorIs(c.DoTraining(context.Background()), pkgtypes.ErrFeaturesRequired)
	assert.Equal([]notice{{level: LevelError, message: "Please select features."}}, notifier.notices)

	assert.Error(c.SelectFeatures([]string{"height"}))
	assert.NoError(c.SelectFeatures([]string{"age", "city", "income"}))
	assert.Error(c.SetValidationStrategy(pkgtypes.ValidationStrategy{Name: "kfold"}))
	assert.NoError(c.SetValidationStrategy(pkgtypes.NewTVHStrategy()))
	assert.Error(c.SaveHPTPreference(catalog.Preference{}))
	assert.NoError(c.SaveHPTPreference(catalog.Preference{AlgoID: "lr", AlgoName: "Linear Regression"}))
	assert.NoError(c.DoTraining(context.Background()))

	vm = c.ViewModel()
	assert.Equal(lifecycle.StatusTrainingStarted, vm.Status())
	assert.Equal(1, vm.TrainCount)
	assert.True(vm.TrainingStarted)
	assert.True(vm.ShowHptStatus)
	assert.Equal("Model training started", vm.Activity[len(vm.Activity)-1].Title)

	channel.emit(t, notification.EventTrainingProgress, notification.TrainingProgress{})
	assert.Equal(ViewModels, c.ViewModel().View)

	channel.emit(t, notification.EventEdaCompleted, notification.EdaCompleted{ProjectStatus: string(lifecycle.StatusModelGenerated)})
	vm = c.ViewModel()
	assert.Equal(lifecycle.StatusModelGenerated, vm.Status())
	assert.False(vm.TrainingStarted)
	assert.False(vm.ShowLoading)
	assert.Equal("Model training completed", vm.Activity[len(vm.Activity)-1].Title)
}

func TestController_DoTrainingRollback(t *testing.T) {
	assert := assert.New(t)
	c, channel, notifier := activeController(t, lifecycle.StatusEdaCompleted, func(m *mocks.MockAPIMockRecorder) {
		m.GetEdas(gomock.Any(), projectID).Return([]studioclient.EdaResult{newEda(pkgtypes.EdaModeAuto)}, nil).Times(1)
		m.GetCorrelation(gomock.Any(), gomock.Any()).Return(&models.Job{}, nil).Times(1)
		m.StartTraining(gomock.Any(), gomock.Any()).Return(nil, &studioclient.StatusError{
			StatusCode: http.StatusServiceUnavailable,
			Message:    "worker unavailable",
		}).Times(1)
	})

	_, err := c.GotoModelTraining(context.Background())
	assert.NoError(err)
	assert.NoError(c.SelectTarget(context.Background(), "income"))
	channel.emit(t, notification.EventHypothesisTest, catalog.CorrelationResult{AlgoType: catalog.TypeRegression})
	assert.NoError(c.SelectFeatures([]string{"age"}))
	assert.NoError(c.SelectAlgorithms([]string{"ridge"}))

	err = c.DoTraining(context.Background())
	var reqErr *RequestError
	assert.ErrorAs(err, &reqErr)
	assert.Equal("start training", reqErr.Op)

	vm := c.ViewModel()
	assert.Equal(lifecycle.StatusEdaCompleted, vm.Status())
	assert.False(vm.TrainingStarted)
	assert.False(vm.ShowLoading)
	assert.Equal(0, vm.TrainCount)
	assert.Equal(notice{level: LevelError, message: "worker unavailable"}, notifier.notices[len(notifier.notices)-1])
}
