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
	"time"

	"d7y.io/studio/client/studioclient"
	"d7y.io/studio/internal/catalog"
	"d7y.io/studio/internal/lifecycle"
	pkgtypes "d7y.io/studio/pkg/types"
	"d7y.io/studio/studio/models"
)

// Step is a page of the wizard.
type Step int

const (
	StepUpload Step = iota + 1
	StepEda
	StepTraining
)

// View is the page shown outside the wizard.
type View string

const (
	ViewWizard View = "wizard"
	ViewModels View = "models"
)

// Activity keys.
const (
	ActivityUpload    = "upload"
	ActivityUploaded  = "uploaded"
	ActivityReadFile  = "read_file"
	ActivityEdaManual = "eda_manual"
	ActivityEdaAuto   = "eda_auto"
	ActivityTraining  = "training"
	ActivityFailed    = "failed"
)

// ActivityStatus is an entry of the activity list.
type ActivityStatus struct {
	Title     string    `json:"title"`
	Value     string    `json:"value"`
	Key       string    `json:"key"`
	Timestamp time.Time `json:"timestamp"`
}

// ViewModel is the state rendered by the wizard. It is only changed by
// the actions of its Controller.
type ViewModel struct {
	Project  *models.Project  `json:"project"`
	Step     Step             `json:"step"`
	View     View             `json:"view"`
	Activity []ActivityStatus `json:"status"`

	ShowLoading  bool                `json:"showLoading"`
	PreviewShown bool                `json:"show"`
	PreviewHead  []string            `json:"previewHead"`
	PreviewRows  []map[string]string `json:"previewRows"`

	EdaMode              string                     `json:"edaMode"`
	ManualEdaMode        bool                       `json:"manualEdaMode"`
	FeatureList          []pkgtypes.FeatureStrategy `json:"featureList"`
	EdaAutoFeatureList   []pkgtypes.FeatureStrategy `json:"edaAutoFeatureList"`
	CustomEdaStrategy    map[string]string          `json:"customEdaStrategy"`
	EdaStarted           bool                       `json:"edaStarted"`
	DisableStartEda      bool                       `json:"disableStartEda"`
	EdaStages            []lifecycle.Stage          `json:"edaStages"`
	HideEdaSummaryTab    bool                       `json:"hideEdaSummaryTab"`
	ShowEdaSummary       bool                       `json:"showEdaSummary"`
	EdaData              *studioclient.EdaResult    `json:"edaData,omitempty"`
	EdaSummary           []pkgtypes.SummaryRow      `json:"edaSummary"`
	CorrectedDataHeading []string                   `json:"correctedDataHeading"`
	TargetList           []string                   `json:"targetList"`
	ProblemType          string                     `json:"problemType"`

	Target                  string                      `json:"target"`
	SelectedFeatures        []string                    `json:"selectedFeatures"`
	CorrelationAlgoType     catalog.Type                `json:"correlationAlgoType"`
	CorrelationIsMultilabel bool                        `json:"correlationIsMultilabel"`
	IsImbalanced            bool                        `json:"isImbalanced"`
	TargetVarType           string                      `json:"targetVarType"`
	CorrelationData         any                         `json:"correlationData,omitempty"`
	ModelAlgorithms         []catalog.Algorithm         `json:"modelAlgorithms"`
	SelectedAlgorithms      []string                    `json:"modelAlgorithm"`
	HptPreference           []catalog.Preference        `json:"hptPreference"`
	ShowHptStatus           bool                        `json:"showhptStatus"`
	ValidationStrategy      pkgtypes.ValidationStrategy `json:"validationStrategy"`
	FeatureScaling          string                      `json:"featureScalingOption"`
	TrainingStarted         bool                        `json:"trainingStarted"`
	TrainCount              int                         `json:"trainCount"`
	PrevTraining            []models.TrainingRun        `json:"prevTrainingInfo,omitempty"`

	FlowFailedCount int `json:"flowFailedCount"`
}

func newViewModel() ViewModel {
	return ViewModel{
		Step:               StepUpload,
		View:               ViewWizard,
		EdaMode:            pkgtypes.EdaModeAuto,
		CustomEdaStrategy:  map[string]string{},
		EdaStages:          lifecycle.NewPendingStageWindow().Stages(),
		HideEdaSummaryTab:  true,
		ValidationStrategy: pkgtypes.NewCVStrategy(),
		FeatureScaling:     pkgtypes.FeatureScalingNone,
	}
}

// Status returns the lifecycle status of the project.
func (vm *ViewModel) Status() lifecycle.Status {
	if vm.Project == nil {
		return ""
	}

	return lifecycle.Status(vm.Project.ProjectStatus)
}

// pushActivity appends an activity entry.
func (vm *ViewModel) pushActivity(key, title, value string) {
	vm.Activity = append(vm.Activity, ActivityStatus{
		Title:     title,
		Value:     value,
		Key:       key,
		Timestamp: time.Now(),
	})
}

// updateActivity retitles the latest entry of key in place.
func (vm *ViewModel) updateActivity(key, title string) bool {
	for i := len(vm.Activity) - 1; i >= 0; i-- {
		if vm.Activity[i].Key == key {
			vm.Activity[i].Title = title
			vm.Activity[i].Timestamp = time.Now()
			return true
		}
	}

	return false
}

// upsertActivity retitles the latest entry of key or appends one.
func (vm *ViewModel) upsertActivity(key, title string) {
	if !vm.updateActivity(key, title) {
		vm.pushActivity(key, title, "")
	}
}

// replaceFirstActivity rewrites the first entry, which tracks the upload.
func (vm *ViewModel) replaceFirstActivity(key, title string) {
	if len(vm.Activity) == 0 {
		vm.pushActivity(key, title, "")
		return
	}

	vm.Activity[0].Key = key
	vm.Activity[0].Title = title
	vm.Activity[0].Timestamp = time.Now()
}

// clone returns a copy sharing no slice or map with vm.
func (vm *ViewModel) clone() ViewModel {
	c := *vm
	if vm.Project != nil {
		project := *vm.Project
		c.Project = &project
	}

	if vm.EdaData != nil {
		eda := *vm.EdaData
		c.EdaData = &eda
	}

	c.Activity = append([]ActivityStatus(nil), vm.Activity...)
	c.PreviewHead = append([]string(nil), vm.PreviewHead...)
	c.PreviewRows = append([]map[string]string(nil), vm.PreviewRows...)
	c.FeatureList = append([]pkgtypes.FeatureStrategy(nil), vm.FeatureList...)
	c.EdaAutoFeatureList = append([]pkgtypes.FeatureStrategy(nil), vm.EdaAutoFeatureList...)
	c.EdaStages = append([]lifecycle.Stage(nil), vm.EdaStages...)
	c.EdaSummary = append([]pkgtypes.SummaryRow(nil), vm.EdaSummary...)
	c.CorrectedDataHeading = append([]string(nil), vm.CorrectedDataHeading...)
	c.TargetList = append([]string(nil), vm.TargetList...)
	c.SelectedFeatures = append([]string(nil), vm.SelectedFeatures...)
	c.ModelAlgorithms = append([]catalog.Algorithm(nil), vm.ModelAlgorithms...)
	c.SelectedAlgorithms = append([]string(nil), vm.SelectedAlgorithms...)
	c.HptPreference = append([]catalog.Preference(nil), vm.HptPreference...)
	c.PrevTraining = append([]models.TrainingRun(nil), vm.PrevTraining...)
	c.CustomEdaStrategy = make(map[string]string, len(vm.CustomEdaStrategy))
	for k, v := range vm.CustomEdaStrategy {
		c.CustomEdaStrategy[k] = v
	}

	return c
}
