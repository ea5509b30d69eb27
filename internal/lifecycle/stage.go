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
	"github.com/gammazero/deque"
)

// MaxStages is the size of the EDA stage window.
const MaxStages = 5

// EdaStageTitles are the coarse EDA stages reported by the compute worker,
// in the order they are expected.
var EdaStageTitles = []string{
	"Calculating missing values",
	"Calculating statistical details",
	"Initiating process for EDA",
	"Implementing strategies for missing values",
	"Finalizing EDA...",
}

// Stage is one progress entry of an EDA run.
type Stage struct {
	StageTitle string `json:"stageTitle" yaml:"stageTitle"`
	Status     bool   `json:"status" yaml:"status"`
}

// StageWindow keeps the most recent MaxStages stages, dropping the oldest.
// It is not safe for concurrent use.
type StageWindow struct {
	stages *deque.Deque[Stage]

	// pending is set while the newest entry is a placeholder for the next
	// expected stage.
	pending bool
}

// NewStageWindow returns a window seeded with stages.
func NewStageWindow(stages ...Stage) *StageWindow {
	w := &StageWindow{stages: deque.New[Stage](MaxStages + 1)}
	for _, stage := range stages {
		w.Push(stage)
	}

	return w
}

// NewPendingStageWindow returns a window holding only the first stage as
// pending.
func NewPendingStageWindow() *StageWindow {
	w := NewStageWindow(Stage{StageTitle: EdaStageTitles[0]})
	w.pending = true
	return w
}

// Push appends stage and drops the oldest entries beyond MaxStages.
func (w *StageWindow) Push(stage Stage) {
	w.pending = false
	w.stages.PushBack(stage)
	for w.stages.Len() > MaxStages {
		w.stages.PopFront()
	}
}

// Advance replaces the trailing pending entry with a reported stage and,
// while there is room, appends the next expected stage as pending.
func (w *StageWindow) Advance(stage Stage) {
	if w.pending {
		w.stages.PopBack()
	}

	w.Push(stage)
	w.Resume()
}

// Resume appends the pending placeholder that follows a snapshot taken
// from the server.
func (w *StageWindow) Resume() {
	if w.pending {
		return
	}

	if next := w.stages.Len(); next < MaxStages && next < len(EdaStageTitles) {
		w.stages.PushBack(Stage{StageTitle: EdaStageTitles[next]})
		w.pending = true
	}
}

// Len returns the number of stages in the window.
func (w *StageWindow) Len() int {
	return w.stages.Len()
}

// Stages returns a copy of the window from oldest to newest.
func (w *StageWindow) Stages() []Stage {
	stages := make([]Stage, 0, w.stages.Len())
	for i := 0; i < w.stages.Len(); i++ {
		stages = append(stages, w.stages.At(i))
	}

	return stages
}
