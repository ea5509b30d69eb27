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
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/hashicorp/go-multierror"

	"d7y.io/studio/client/socket"
	"d7y.io/studio/client/studioclient"
	"d7y.io/studio/internal/catalog"
	"d7y.io/studio/internal/dferrors"
	logger "d7y.io/studio/internal/dflog"
	"d7y.io/studio/internal/lifecycle"
	pkgtypes "d7y.io/studio/pkg/types"
	"d7y.io/studio/studio/config"
	"d7y.io/studio/studio/notification"
	"d7y.io/studio/studio/storage"
	"d7y.io/studio/studio/types"
)

// Channel delivers the events of joined projects.
type Channel interface {
	Subscribe(event string, handler socket.Handler) *socket.Subscription
	Join(projectID uint) error
	Leave(projectID uint) error
}

var (
	errUploadRequired = dferrors.New(dferrors.CodeValidation, "Please upload file and go ahead.")
	errEdaRequired    = dferrors.New(dferrors.CodeValidation, "Please complete EDA.")

	// ErrNotActive is returned by actions of a controller that is not active.
	ErrNotActive = errors.New("wizard is not active")
)

type edaTab string

const (
	tabEda      edaTab = "eda"
	tabTraining edaTab = "training"
)

// Controller drives the upload, EDA and training wizard of one project.
// Actions and event reactions are serialized.
type Controller struct {
	api      API
	channel  Channel
	notifier Notifier

	mu         sync.Mutex
	projectID  uint
	vm         ViewModel
	stages     *lifecycle.StageWindow
	algorithms []catalog.Algorithm
	scope      *socket.Scope
	ctx        context.Context
	cancel     context.CancelFunc
	log        *logger.SugaredLoggerOnWith
}

// Option is a functional option for configuring the controller.
type Option func(c *Controller)

// WithNotifier set the notifier of user facing messages.
func WithNotifier(notifier Notifier) Option {
	return func(c *Controller) {
		c.notifier = notifier
	}
}

// New returns an inactive controller.
func New(api API, channel Channel, options ...Option) *Controller {
	c := &Controller{
		api:      api,
		channel:  channel,
		notifier: logNotifier{},
		vm:       newViewModel(),
		stages:   lifecycle.NewPendingStageWindow(),
	}

	for _, opt := range options {
		opt(c)
	}

	return c
}

// ViewModel returns a snapshot of the view model.
func (c *Controller) ViewModel() ViewModel {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.vm.clone()
}

// Activate subscribes to the events of the project and loads it. Every
// subscription is released if activation fails.
func (c *Controller) Activate(ctx context.Context, projectID uint) (err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.scope != nil {
		return errors.New("wizard is already active")
	}

	scope := socket.NewScope()
	var joined bool
	defer func() {
		if err != nil {
			scope.Close() // nolint: errcheck
			if joined {
				c.channel.Leave(projectID) // nolint: errcheck
			}
		}
	}()

	scope.Add(c.channel.Subscribe(notification.EventEdaProgress, c.handle(c.onEdaProgress)))
	scope.Add(c.channel.Subscribe(notification.EventEdaCompleted, c.handle(c.onEdaCompleted)))
	scope.Add(c.channel.Subscribe(notification.EventTrainingProgress, c.handle(c.onTrainingProgress)))
	scope.Add(c.channel.Subscribe(notification.EventUddFlowCompleted, c.handle(c.onUddFlowCompleted)))
	scope.Add(c.channel.Subscribe(notification.EventHypothesisTest, c.handle(c.onHypothesisTest)))
	if err := c.channel.Join(projectID); err != nil {
		return err
	}
	joined = true

	project, err := c.api.GetProject(ctx, projectID)
	if err != nil {
		c.notifier.Notify(LevelError, serverMessage(err, "Error fetching project details"))
		return &RequestError{Op: "get project", Err: err}
	}

	c.log = logger.WithProject(projectID)
	c.projectID = projectID
	c.vm = newViewModel()
	c.vm.Project = project
	c.stages = lifecycle.NewPendingStageWindow()
	c.ctx, c.cancel = context.WithCancel(context.WithoutCancel(ctx))
	c.scope = scope

	algorithms, err := c.api.GetAlgorithms(ctx, nil)
	if err != nil {
		c.notifier.Notify(LevelError, "Error fetching algorithms")
		c.log.Warnf("get algorithms failed: %s", err.Error())
	}
	c.algorithms = algorithms

	if c.vm.Status() == lifecycle.StatusEdaStarted {
		c.vm.EdaStarted = true
		stages, err := c.api.GetEdaProgress(ctx, projectID)
		if err != nil {
			c.notifier.Notify(LevelError, "Error fetching eda progress details")
		} else {
			c.stages = lifecycle.NewStageWindow(stages...)
			c.stages.Resume()
		}
	}
	c.syncStages()

	if c.vm.Status() != lifecycle.StatusProjectCreated {
		c.loadProject(ctx)
	}

	c.log.Infof("wizard activated in %s", c.vm.Status())
	return nil
}

// Close releases the subscriptions of the controller and leaves its
// project.
func (c *Controller) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.scope == nil {
		return nil
	}

	var errs error
	if err := c.scope.Close(); err != nil {
		errs = multierror.Append(errs, err)
	}

	if err := c.channel.Leave(c.projectID); err != nil && !errors.Is(err, socket.ErrClosed) {
		errs = multierror.Append(errs, err)
	}

	c.cancel()
	c.scope = nil
	return errs
}

func (c *Controller) active() error {
	if c.scope == nil {
		return ErrNotActive
	}

	return nil
}

// handle serializes an event reaction with the actions. Events of other
// projects sharing the channel are ignored.
func (c *Controller) handle(fn func(context.Context, json.RawMessage) error) socket.Handler {
	return func(projectID uint, data json.RawMessage) {
		c.mu.Lock()
		defer c.mu.Unlock()

		if c.scope == nil || projectID != c.projectID {
			return
		}

		if err := fn(c.ctx, data); err != nil {
			c.log.Warnf("handle event failed: %s", err.Error())
		}
	}
}

func (c *Controller) syncStages() {
	c.vm.EdaStages = c.stages.Stages()
}

// loadProject rebuilds the preview and restores the state of a running or
// finished job.
func (c *Controller) loadProject(ctx context.Context) {
	if err := c.buildPreview(ctx); err != nil {
		return
	}

	switch c.vm.Status() {
	case lifecycle.StatusModelGenerated:
		runs, err := c.api.ListModels(ctx, c.vm.Project.ID)
		if err != nil {
			c.vm.ShowLoading = false
			c.notifier.Notify(LevelError, "Error fetching trained models details")
			return
		}

		c.vm.PrevTraining = runs
		if len(runs) > 0 && !runs[0].Reported() {
			c.notifier.Notify(LevelError, "Model generation is going on...")
			return
		}

		c.vm.ShowLoading = false
	case lifecycle.StatusEdaStarted:
		c.vm.ShowLoading = true
	case lifecycle.StatusTrainingStarted:
		c.vm.ShowLoading = true
		c.vm.TrainingStarted = true
	default:
		c.vm.ShowLoading = false
	}
}

// refreshProject reloads the project, keeping the local copy on failure.
func (c *Controller) refreshProject(ctx context.Context) {
	project, err := c.api.GetProject(ctx, c.vm.Project.ID)
	if err != nil {
		c.log.Warnf("refresh project failed: %s", err.Error())
		return
	}

	c.vm.Project = project
}

// buildPreview reads the dataset preview and resets the feature list.
func (c *Controller) buildPreview(ctx context.Context) error {
	c.vm.PreviewShown = false
	c.vm.ShowLoading = true

	preview, err := c.api.ReadData(ctx, c.vm.Project.ID)
	if err != nil {
		c.vm.ShowLoading = false
		c.notifier.Notify(LevelError, "Oops!, something went wrong while generating preview table")
		return &RequestError{Op: "read data", Err: err}
	}

	c.vm.PreviewShown = true
	c.vm.PreviewHead = preview.Head
	c.vm.PreviewRows = preview.PreviewData.DataFrame
	c.vm.FeatureList = make([]pkgtypes.FeatureStrategy, 0, len(preview.Head))
	for _, head := range preview.Head {
		c.vm.FeatureList = append(c.vm.FeatureList, pkgtypes.FeatureStrategy{
			FeatureName: head,
			Strategy:    pkgtypes.DefaultStrategy,
		})
	}
	c.vm.EdaAutoFeatureList = append([]pkgtypes.FeatureStrategy(nil), c.vm.FeatureList...)
	c.vm.updateActivity(ActivityReadFile, "Preview generated")
	return nil
}

func checkExtension(filename string) error {
	ext := storage.Extension(filename)
	for _, allowed := range config.DefaultUploadAllowedExtensions {
		if ext == allowed {
			return nil
		}
	}

	return storage.ErrInvalidExtension
}

// Upload sends a dataset and applies the response.
func (c *Controller) Upload(ctx context.Context, filename string, r io.Reader) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.active(); err != nil {
		return err
	}

	if err := checkExtension(filename); err != nil {
		c.notifier.Notify(LevelError, errorMessage(err))
		return err
	}

	c.vm.ShowLoading = true
	c.vm.FeatureList = nil
	c.vm.SelectedFeatures = nil
	c.vm.FlowFailedCount = 0
	c.vm.Activity = nil
	c.vm.pushActivity(ActivityUpload, "Uploading file...", filename)

	result, err := c.api.UploadDataset(ctx, &studioclient.UploadDatasetInput{
		ProjectID: c.vm.Project.ID,
		Filename:  filename,
		Reader:    r,
	})
	if err != nil {
		c.vm.ShowLoading = false
		c.vm.replaceFirstActivity(ActivityFailed, "File uploaded failed")
		c.notifier.Notify(LevelError, serverMessage(err, "Oops!, file could not be uploaded"))
		return &RequestError{Op: "upload dataset", Err: err}
	}

	return c.uploadCompleted(ctx, result, filename)
}

// UploadCompleted applies the response of an upload done outside the
// controller.
func (c *Controller) UploadCompleted(ctx context.Context, result *studioclient.UploadResult) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.active(); err != nil {
		return err
	}

	c.vm.FlowFailedCount = 0
	return c.uploadCompleted(ctx, result, "")
}

func (c *Controller) uploadCompleted(ctx context.Context, result *studioclient.UploadResult, filename string) error {
	c.vm.Target = ""
	c.vm.ModelAlgorithms = nil
	c.vm.SelectedAlgorithms = nil
	if result.ProjectDetails != nil {
		c.vm.Project = result.ProjectDetails
	}

	c.vm.replaceFirstActivity(ActivityUploaded, "File uploaded")
	if result.Status == types.UploadStatusFlowStart {
		c.notifier.Notify(LevelSuccess, "Flow execution started, please wait!")
		return nil
	}

	c.vm.pushActivity(ActivityReadFile, "Reading file", filename)
	c.vm.EdaMode = pkgtypes.EdaModeAuto
	c.vm.ManualEdaMode = false
	c.vm.ShowEdaSummary = false
	c.vm.CustomEdaStrategy = map[string]string{}

	err := c.buildPreview(ctx)
	c.vm.ShowLoading = false
	return err
}

// ChooseEdaMode switches between auto and manual EDA.
func (c *Controller) ChooseEdaMode(mode string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.active(); err != nil {
		return err
	}

	switch mode {
	case pkgtypes.EdaModeManual:
		c.vm.ManualEdaMode = true
	case pkgtypes.EdaModeAuto:
		c.vm.ManualEdaMode = false
		c.vm.CustomEdaStrategy = map[string]string{}
	default:
		return dferrors.Newf(dferrors.CodeValidation, "unknown eda mode %q", mode)
	}

	c.vm.EdaMode = mode
	c.vm.DisableStartEda = c.vm.EdaStarted
	return nil
}

func (c *Controller) featureIndex(feature string) int {
	for i := range c.vm.FeatureList {
		if c.vm.FeatureList[i].FeatureName == feature {
			return i
		}
	}

	return -1
}

// ChangeStrategy sets the missing value strategy of a feature.
func (c *Controller) ChangeStrategy(feature, strategy string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.active(); err != nil {
		return err
	}

	if !pkgtypes.IsStrategy(strategy) {
		return dferrors.Newf(dferrors.CodeValidation, "unknown strategy %q", strategy)
	}

	i := c.featureIndex(feature)
	if i < 0 {
		return dferrors.Newf(dferrors.CodeValidation, "unknown feature %q", feature)
	}

	c.vm.FeatureList[i].Strategy = strategy
	if strategy != pkgtypes.StrategyCustom {
		c.vm.FeatureList[i].CustomValue = ""
		delete(c.vm.CustomEdaStrategy, feature)
	}

	return nil
}

// SetCustomValue sets the value of a feature using the Custom strategy.
func (c *Controller) SetCustomValue(feature, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.active(); err != nil {
		return err
	}

	i := c.featureIndex(feature)
	if i < 0 {
		return dferrors.Newf(dferrors.CodeValidation, "unknown feature %q", feature)
	}

	if c.vm.FeatureList[i].Strategy != pkgtypes.StrategyCustom {
		return dferrors.Newf(dferrors.CodeValidation, "feature %q does not use the %s strategy", feature, pkgtypes.StrategyCustom)
	}

	c.vm.FeatureList[i].CustomValue = value
	c.vm.CustomEdaStrategy[feature] = value
	return nil
}

// StartEda requests an EDA run with the selected mode. Invalid custom
// values are rejected before any request.
func (c *Controller) StartEda(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.active(); err != nil {
		return err
	}

	manual := c.vm.EdaMode == pkgtypes.EdaModeManual
	strategies := c.vm.EdaAutoFeatureList
	var custom map[string]string
	if manual {
		if err := pkgtypes.CheckCustomValues(c.vm.EdaMode, c.vm.FeatureList, c.vm.CustomEdaStrategy); err != nil {
			c.notifier.Notify(LevelAlert, errorMessage(err))
			return err
		}

		strategies = c.vm.FeatureList
		custom = c.vm.CustomEdaStrategy
	}

	next, err := lifecycle.CanTransition(c.vm.Status(), lifecycle.EventStartEda)
	if err != nil {
		c.notifier.Notify(LevelError, errorMessage(err))
		return err
	}

	prev, prevStages := c.vm.clone(), c.stages
	c.stages = lifecycle.NewPendingStageWindow()
	c.syncStages()
	c.vm.Target = ""
	if manual {
		c.vm.upsertActivity(ActivityEdaManual, "Performing manual EDA")
	} else {
		c.vm.upsertActivity(ActivityEdaAuto, "Performing auto EDA")
	}
	c.vm.DisableStartEda = true
	c.vm.ShowLoading = true
	c.vm.HideEdaSummaryTab = false
	c.vm.EdaStarted = true

	if _, err := c.api.StartEda(ctx, &studioclient.StartEdaInput{
		ProjectID:         c.vm.Project.ID,
		EdaMode:           c.vm.EdaMode,
		Strategies:        strategies,
		CustomEdaStrategy: custom,
	}); err != nil {
		c.stages = prevStages
		c.vm.EdaStages = prev.EdaStages
		c.vm.Activity = prev.Activity
		c.vm.EdaStarted = prev.EdaStarted
		c.vm.DisableStartEda = prev.DisableStartEda
		c.vm.ShowLoading = prev.ShowLoading
		c.vm.HideEdaSummaryTab = prev.HideEdaSummaryTab
		c.vm.Target = prev.Target
		c.notifier.Notify(LevelError, serverMessage(err, "Oops!, eda could not start"))
		return &RequestError{Op: "start eda", Err: err}
	}

	c.vm.Project.ProjectStatus = string(next)
	return nil
}

// GotoEda moves to the EDA step once a dataset is uploaded.
func (c *Controller) GotoEda(ctx context.Context) (Step, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.active(); err != nil {
		return c.vm.Step, err
	}

	if c.vm.Project.Filename == "" {
		c.notifier.Notify(LevelError, errUploadRequired.Message)
		c.vm.Step = StepUpload
		return StepUpload, errUploadRequired
	}

	c.vm.Step = StepEda
	if c.vm.Status() != lifecycle.StatusFileUploaded {
		return StepEda, c.findEda(ctx, tabEda)
	}

	return StepEda, nil
}

// GotoModelTraining moves to the training step once EDA is completed.
func (c *Controller) GotoModelTraining(ctx context.Context) (Step, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.active(); err != nil {
		return c.vm.Step, err
	}

	if err := pkgtypes.CheckModeStrategies(c.vm.EdaSummary); err != nil {
		c.notifier.Notify(LevelAlert, errorMessage(err))
		return c.vm.Step, err
	}

	if err := pkgtypes.CheckCustomValues(c.vm.EdaMode, c.vm.FeatureList, c.vm.CustomEdaStrategy); err != nil {
		c.notifier.Notify(LevelAlert, errorMessage(err))
		return c.vm.Step, err
	}

	switch c.vm.Status() {
	case lifecycle.StatusProjectCreated:
		c.notifier.Notify(LevelError, errUploadRequired.Message)
		c.vm.Step = StepUpload
		return StepUpload, errUploadRequired
	case lifecycle.StatusFileUploaded, lifecycle.StatusEdaStarted, lifecycle.StatusEdaFailed:
		c.notifier.Notify(LevelError, errEdaRequired.Message)
		c.vm.Step = StepEda
		return StepEda, errEdaRequired
	}

	if c.vm.EdaData != nil && c.vm.EdaData.EdaMode != c.vm.EdaMode {
		err := dferrors.Newf(dferrors.CodeValidation, "Please complete %s EDA.", c.vm.EdaMode)
		c.notifier.Notify(LevelError, errorMessage(err))
		return c.vm.Step, err
	}

	if c.vm.Status() == lifecycle.StatusModelGenerated && len(c.vm.PrevTraining) == 0 {
		runs, err := c.api.ListModels(ctx, c.vm.Project.ID)
		if err != nil {
			c.notifier.Notify(LevelError, "Error fetching trained models details")
			return c.vm.Step, &RequestError{Op: "list models", Err: err}
		}

		c.vm.PrevTraining = runs
	}

	c.vm.ValidationStrategy = pkgtypes.NewCVStrategy()
	c.vm.Step = StepTraining
	return StepTraining, c.findEda(ctx, tabTraining)
}

// findEda loads the latest EDA run into the view model.
func (c *Controller) findEda(ctx context.Context, tab edaTab) error {
	c.vm.ShowLoading = true
	c.vm.ShowEdaSummary = false
	c.vm.TargetList = nil

	edas, err := c.api.GetEdas(ctx, c.vm.Project.ID)
	c.vm.ShowLoading = false
	if err != nil {
		c.notifier.Notify(LevelError, "Error fetching eda details")
		return &RequestError{Op: "get edas", Err: err}
	}

	if len(edas) == 0 {
		return nil
	}

	eda := edas[0]
	summary := []pkgtypes.SummaryRow(eda.EdaSummary)
	c.vm.EdaData = &eda
	c.vm.EdaSummary = summary
	c.vm.CorrectedDataHeading = nil
	for _, row := range summary {
		if row.DataType != pkgtypes.DataTypeDatetime {
			c.vm.CorrectedDataHeading = append(c.vm.CorrectedDataHeading, row.ColName)
		}
	}

	c.vm.ShowEdaSummary = c.vm.Status() != lifecycle.StatusEdaFailed
	if len(eda.Strategies) > 0 {
		c.vm.FeatureList = append([]pkgtypes.FeatureStrategy(nil), eda.Strategies...)
	}

	c.vm.TargetList = eda.TargetList
	if len(c.vm.TargetList) == 0 {
		c.vm.TargetList = pkgtypes.TargetCandidates(eda.TargetFeatures, summary)
	}

	c.vm.ProblemType = eda.ProblemType
	c.vm.HideEdaSummaryTab = false
	c.vm.EdaMode = eda.EdaMode
	c.vm.ManualEdaMode = eda.EdaMode == pkgtypes.EdaModeManual && tab == tabEda
	c.vm.DisableStartEda = c.vm.Status().IsRunning()

	if tab != tabTraining {
		return nil
	}

	if c.vm.Status() == lifecycle.StatusModelGenerated && len(c.vm.PrevTraining) > 0 {
		run := c.vm.PrevTraining[0]
		c.vm.Target = run.DepVariable
		c.vm.SelectedFeatures = append([]string(nil), run.IndepVariable...)
		c.vm.SelectedAlgorithms = append([]string(nil), run.Algorithms...)
		c.vm.ValidationStrategy = run.ValidationStrategy.Data()
		c.vm.FeatureScaling = run.FeatureScaling
		c.vm.HptPreference = append([]catalog.Preference(nil), run.HptPreference...)
	}

	if c.vm.Target != "" {
		return c.selectTarget(ctx, c.vm.Target)
	}

	return nil
}

// SelectTarget picks the target and requests its hypothesis test. The
// compatible algorithms arrive with the hypothisisTest event.
func (c *Controller) SelectTarget(ctx context.Context, target string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.active(); err != nil {
		return err
	}

	return c.selectTarget(ctx, target)
}

func (c *Controller) selectTarget(ctx context.Context, target string) error {
	features := make([]string, 0, len(c.vm.EdaSummary))
	var found bool
	for _, row := range c.vm.EdaSummary {
		if row.ColName == target {
			found = true
			continue
		}

		features = append(features, row.ColName)
	}

	if !found {
		return dferrors.Newf(dferrors.CodeValidation, "unknown target %q", target)
	}

	c.vm.ShowLoading = true
	if c.vm.Status() != lifecycle.StatusModelGenerated {
		c.vm.ModelAlgorithms = nil
		c.vm.SelectedAlgorithms = nil
	}
	c.vm.Target = target
	c.vm.SelectedFeatures = pkgtypes.IndependentVariables(target, c.vm.SelectedFeatures)

	if _, err := c.api.GetCorrelation(ctx, &studioclient.GetCorrelationInput{
		ProjectID:     c.vm.Project.ID,
		DepVariable:   target,
		IndepVariable: features,
	}); err != nil {
		c.vm.ShowLoading = false
		c.notifier.Notify(LevelError, serverMessage(err, "Error fetching correlation details"))
		return &RequestError{Op: "get correlation", Err: err}
	}

	return nil
}

// SelectFeatures sets the independent variables, dropping the target.
func (c *Controller) SelectFeatures(features []string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.active(); err != nil {
		return err
	}

	known := make(map[string]struct{}, len(c.vm.EdaSummary))
	for _, row := range c.vm.EdaSummary {
		known[row.ColName] = struct{}{}
	}

	for _, feature := range features {
		if _, ok := known[feature]; !ok {
			return dferrors.Newf(dferrors.CodeValidation, "unknown feature %q", feature)
		}
	}

	c.vm.SelectedFeatures = pkgtypes.IndependentVariables(c.vm.Target, features)
	return nil
}

// SelectAlgorithms sets the algorithms to train, by id. Only algorithms
// compatible with the target can be selected.
func (c *Controller) SelectAlgorithms(ids []string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.active(); err != nil {
		return err
	}

	for _, id := range ids {
		if !hasAlgorithm(c.vm.ModelAlgorithms, id) {
			return dferrors.Newf(dferrors.CodeValidation, "unknown algorithm %q", id)
		}
	}

	c.vm.SelectedAlgorithms = append([]string(nil), ids...)
	return nil
}

func hasAlgorithm(algorithms []catalog.Algorithm, id string) bool {
	for _, algorithm := range algorithms {
		if algorithm.ID == id {
			return true
		}
	}

	return false
}

// SaveHPTPreference stores the hyperparameters of one algorithm.
func (c *Controller) SaveHPTPreference(pref catalog.Preference) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.active(); err != nil {
		return err
	}

	if pref.AlgoID == "" {
		return dferrors.New(dferrors.CodeValidation, "Please select algorithm.")
	}

	c.vm.HptPreference = catalog.SavePreference(c.vm.HptPreference, pref)
	c.vm.ShowHptStatus = true
	return nil
}

// SetValidationStrategy sets how models are validated.
func (c *Controller) SetValidationStrategy(strategy pkgtypes.ValidationStrategy) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.active(); err != nil {
		return err
	}

	switch strategy.Name {
	case pkgtypes.ValidationCrossValidation, pkgtypes.ValidationTrainValidationHoldout:
	default:
		return dferrors.Newf(dferrors.CodeValidation, "unknown validation strategy %q", strategy.Name)
	}

	c.vm.ValidationStrategy = strategy.Normalize()
	return nil
}

// DoTraining requests a training run. Missing selections are rejected
// before any request.
func (c *Controller) DoTraining(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.active(); err != nil {
		return err
	}

	if err := pkgtypes.CheckTrainingSelection(c.vm.Target, c.vm.SelectedFeatures, c.vm.SelectedAlgorithms); err != nil {
		c.notifier.Notify(LevelError, errorMessage(err))
		return err
	}

	next, err := lifecycle.CanTransition(c.vm.Status(), lifecycle.EventStartTraining)
	if err != nil {
		c.notifier.Notify(LevelError, errorMessage(err))
		return err
	}

	c.vm.ShowLoading = true
	c.vm.TrainingStarted = true

	if _, err := c.api.StartTraining(ctx, &studioclient.StartTrainingInput{
		ProjectID:          c.vm.Project.ID,
		DepVariable:        c.vm.Target,
		IndepVariable:      pkgtypes.IndependentVariables(c.vm.Target, c.vm.SelectedFeatures),
		Algorithms:         c.vm.SelectedAlgorithms,
		ValidationStrategy: c.vm.ValidationStrategy.Normalize(),
		HptPreference:      c.vm.HptPreference,
		FeatureScaling:     c.vm.FeatureScaling,
	}); err != nil {
		c.vm.TrainingStarted = false
		c.vm.ShowLoading = false
		c.notifier.Notify(LevelError, serverMessage(err, "Oops!, training could not start"))
		return &RequestError{Op: "start training", Err: err}
	}

	c.vm.TrainCount++
	c.vm.upsertActivity(ActivityTraining, "Model training started")
	c.vm.Project.ProjectStatus = string(next)
	return nil
}

func (c *Controller) onEdaProgress(ctx context.Context, data json.RawMessage) error {
	var stage lifecycle.Stage
	if err := json.Unmarshal(data, &stage); err != nil {
		return err
	}

	c.stages.Advance(stage)
	c.syncStages()
	return nil
}

func (c *Controller) onEdaCompleted(ctx context.Context, data json.RawMessage) error {
	var msg notification.EdaCompleted
	if err := json.Unmarshal(data, &msg); err != nil {
		return err
	}

	c.refreshProject(ctx)
	switch lifecycle.Status(msg.ProjectStatus) {
	case lifecycle.StatusEdaFailed:
		c.vm.ShowLoading = false
		c.vm.EdaStarted = false
		c.vm.DisableStartEda = false
		c.vm.ShowEdaSummary = false
		c.notifier.Notify(LevelError, "Oops EDA failed, please check the data and try again")
	case lifecycle.StatusModelFailed:
		c.vm.TrainingStarted = false
		c.vm.ShowLoading = false
		c.notifier.Notify(LevelError, "Oops training failed for "+msg.AlgoName)
	case lifecycle.StatusEdaCompleted:
		c.vm.ShowLoading = false
		c.vm.EdaStarted = false
		if c.vm.EdaMode == pkgtypes.EdaModeManual {
			c.vm.updateActivity(ActivityEdaManual, "Manual EDA completed")
		} else {
			c.vm.updateActivity(ActivityEdaAuto, "Auto EDA completed")
		}

		if err := c.findEda(ctx, tabEda); err != nil {
			return err
		}

		c.notifier.Notify(LevelSuccess, "Eda completed now, you can start training.")
	case lifecycle.StatusModelGenerated:
		c.vm.ShowLoading = false
		c.vm.TrainingStarted = false
		c.vm.updateActivity(ActivityTraining, "Model training completed")
		c.vm.View = ViewModels
	default:
		return fmt.Errorf("unexpected project status %q", msg.ProjectStatus)
	}

	return nil
}

func (c *Controller) onTrainingProgress(ctx context.Context, data json.RawMessage) error {
	c.vm.View = ViewModels
	return nil
}

// onUddFlowCompleted surfaces a failed flow once per streak of failures.
func (c *Controller) onUddFlowCompleted(ctx context.Context, data json.RawMessage) error {
	var msg notification.UddFlowCompleted
	if err := json.Unmarshal(data, &msg); err != nil {
		return err
	}

	switch msg.Status {
	case notification.FlowStatusCompleted:
		c.vm.FlowFailedCount = 0
		c.refreshProject(ctx)
		if msg.File != "" {
			c.vm.Project.Filename = msg.File
		}

		c.vm.pushActivity(ActivityReadFile, "Reading file", msg.File)
		err := c.buildPreview(ctx)
		c.vm.ShowLoading = false
		return err
	case notification.FlowStatusFailed:
		c.vm.FlowFailedCount++
		if c.vm.FlowFailedCount == 1 {
			c.vm.pushActivity(ActivityReadFile, "Flow execution failed", msg.ErrMsg)
			c.notifier.Notify(LevelError, "Error while executing flow")
		}

		c.vm.ShowLoading = false
		return nil
	default:
		return fmt.Errorf("unexpected flow status %q", msg.Status)
	}
}

func (c *Controller) onHypothesisTest(ctx context.Context, data json.RawMessage) error {
	var result catalog.CorrelationResult
	if err := json.Unmarshal(data, &result); err != nil {
		return err
	}

	result.AlgoType = catalog.Type(strings.ToLower(string(result.AlgoType)))
	c.vm.CorrelationAlgoType = result.AlgoType
	c.vm.CorrelationIsMultilabel = result.IsMultilabel
	c.vm.IsImbalanced = result.IsImbalanced
	c.vm.TargetVarType = result.TargetVarType
	c.vm.CorrelationData = result.HypothesisTestingData
	c.vm.ModelAlgorithms = catalog.FilterAlgorithms(result, c.algorithms)

	selected := c.vm.SelectedAlgorithms[:0]
	for _, id := range c.vm.SelectedAlgorithms {
		if hasAlgorithm(c.vm.ModelAlgorithms, id) {
			selected = append(selected, id)
		}
	}
	c.vm.SelectedAlgorithms = selected
	c.vm.ShowLoading = false
	return nil
}
