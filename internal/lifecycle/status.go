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

package lifecycle

import (
	"context"
	"errors"
	"fmt"

	"github.com/looplab/fsm"

	logger "d7y.io/studio/internal/dflog"
)

// Status is the lifecycle status of a project. The string values are the
// wire tokens shared with clients and the compute worker.
type Status string

const (
	// Project exists but has no dataset.
	StatusProjectCreated Status = "Project Created"

	// Dataset has been uploaded.
	StatusFileUploaded Status = "File Uploaded"

	// EDA has been dispatched to the compute worker.
	StatusEdaStarted Status = "Eda Started"

	// EDA failed on the compute worker.
	StatusEdaFailed Status = "EDA Failed"

	// EDA finished and its summary is available.
	StatusEdaCompleted Status = "Eda Completed"

	// Training has been dispatched to the compute worker.
	StatusTrainingStarted Status = "Training Started"

	// No requested algorithm produced a model.
	StatusModelFailed Status = "Model Failed"

	// Every requested algorithm reported and at least one produced a model.
	StatusModelGenerated Status = "Model Generated"
)

// Event triggers a status transition.
type Event string

const (
	// Dataset upload finished, either directly or through a flow.
	EventUpload Event = "Upload"

	// EDA request accepted.
	EventStartEda Event = "StartEda"

	// Worker reported EDA completion.
	EventCompleteEda Event = "CompleteEda"

	// Worker reported EDA failure.
	EventFailEda Event = "FailEda"

	// Training request accepted.
	EventStartTraining Event = "StartTraining"

	// Every algorithm reported and at least one model exists.
	EventGenerateModel Event = "GenerateModel"

	// Every algorithm reported and none produced a model.
	EventFailModel Event = "FailModel"
)

var statuses = []Status{
	StatusProjectCreated,
	StatusFileUploaded,
	StatusEdaStarted,
	StatusEdaFailed,
	StatusEdaCompleted,
	StatusTrainingStarted,
	StatusModelFailed,
	StatusModelGenerated,
}

// events is the transition table of the project lifecycle.
var events = fsm.Events{
	{Name: string(EventUpload), Src: names(StatusProjectCreated, StatusFileUploaded, StatusEdaFailed, StatusEdaCompleted, StatusModelFailed, StatusModelGenerated), Dst: string(StatusFileUploaded)},
	{Name: string(EventStartEda), Src: names(StatusFileUploaded, StatusEdaFailed, StatusEdaCompleted, StatusModelFailed, StatusModelGenerated), Dst: string(StatusEdaStarted)},
	{Name: string(EventCompleteEda), Src: names(StatusEdaStarted), Dst: string(StatusEdaCompleted)},
	{Name: string(EventFailEda), Src: names(StatusEdaStarted), Dst: string(StatusEdaFailed)},
	{Name: string(EventStartTraining), Src: names(StatusEdaCompleted, StatusModelFailed, StatusModelGenerated), Dst: string(StatusTrainingStarted)},
	{Name: string(EventGenerateModel), Src: names(StatusTrainingStarted), Dst: string(StatusModelGenerated)},
	{Name: string(EventFailModel), Src: names(StatusTrainingStarted), Dst: string(StatusModelFailed)},
}

// ErrUnknownStatus is returned for tokens outside the closed status set.
var ErrUnknownStatus = errors.New("unknown project status")

// TransitionError rejects an event in the current status.
type TransitionError struct {
	From  Status
	Event Event
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("project status %s does not allow %s", e.From, e.Event)
}

// Busy reports whether the rejection happened because a job is in flight.
func (e *TransitionError) Busy() bool {
	return e.From.IsRunning()
}

// Parse converts a wire token into a Status.
func Parse(s string) (Status, error) {
	for _, status := range statuses {
		if string(status) == s {
			return status, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

// Statuses returns the closed set of statuses in lifecycle order.
func Statuses() []Status {
	return append([]Status(nil), statuses...)
}

// IsRunning reports whether a compute job owns the project.
func (s Status) IsRunning() bool {
	return s == StatusEdaStarted || s == StatusTrainingStarted
}

func (s Status) String() string {
	return string(s)
}

// CanTransition returns the status reached by applying event to current.
// It has no side effects.
func CanTransition(current Status, event Event) (Status, error) {
	if _, err := Parse(string(current)); err != nil {
		return "", err
	}

	f := fsm.NewFSM(string(current), events, nil)
	if err := f.Event(context.Background(), string(event)); err != nil {
		var noTransition fsm.NoTransitionError
		if !errors.As(err, &noTransition) {
			return "", &TransitionError{From: current, Event: event}
		}
	}

	return Status(f.Current()), nil
}

// Machine tracks the status of one project and logs every transition.
type Machine struct {
	fsm *fsm.FSM
	log *logger.SugaredLoggerOnWith
}

// NewMachine returns a machine positioned at current.
func NewMachine(projectID uint, current Status) *Machine {
	m := &Machine{log: logger.WithProject(projectID)}
	m.fsm = fsm.NewFSM(
		string(current),
		events,
		fsm.Callbacks{
			"enter_state": func(ctx context.Context, e *fsm.Event) {
				m.log.Infof("project status is %s", e.Dst)
			},
		},
	)

	return m
}

// Fire applies event and returns the new status.
func (m *Machine) Fire(ctx context.Context, event Event) (Status, error) {
	from := m.Current()
	if err := m.fsm.Event(ctx, string(event)); err != nil {
		var noTransition fsm.NoTransitionError
		if !errors.As(err, &noTransition) {
			m.log.Warnf("reject %s in %s", event, from)
			return from, &TransitionError{From: from, Event: event}
		}
	}

	return m.Current(), nil
}

// Can reports whether event is allowed in the current status.
func (m *Machine) Can(event Event) bool {
	return m.fsm.Can(string(event))
}

// Current returns the current status.
func (m *Machine) Current() Status {
	return Status(m.fsm.Current())
}

func names(ss ...Status) []string {
	res := make([]string, 0, len(ss))
	for _, s := range ss {
		res = append(res, string(s))
	}

	return res
}
