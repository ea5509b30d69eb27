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

package notification

import (
	"encoding/json"
)

// Events emitted to socket clients.
const (
	EventEdaProgress      = "edaProgress"
	EventEdaCompleted     = "edaCompleted"
	EventTrainingProgress = "trainingProgress"
	EventUddFlowCompleted = "uddFlowCompleted"

	// EventHypothesisTest keeps the event name known by deployed clients.
	EventHypothesisTest = "hypothisisTest"
)

// Flow outcomes of EventUddFlowCompleted.
const (
	FlowStatusCompleted = "complted"
	FlowStatusFailed    = "flow_failed"
)

// Client message types.
const (
	MessageTypeJoin  = "join"
	MessageTypeLeave = "leave"
)

// Message is an event of a project sent to socket clients.
type Message struct {
	Event     string          `json:"event"`
	ProjectID uint            `json:"projectId"`
	Data      json.RawMessage `json:"data"`
}

// ClientMessage is sent by socket clients to pick their projects.
type ClientMessage struct {
	Type      string `json:"type"`
	ProjectID uint   `json:"projectId"`
}

type EdaCompleted struct {
	ProjectStatus string `json:"projectStatus"`
	AlgoName      string `json:"algoName,omitempty"`
}

type TrainingProgress struct{}

type UddFlowCompleted struct {
	Status string `json:"status"`
	File   string `json:"file,omitempty"`
	ErrMsg string `json:"err_msg,omitempty"`
}

// NewMessage encodes data as the payload of event.
func NewMessage(projectID uint, event string, data any) (*Message, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Message{
		Event:     event,
		ProjectID: projectID,
		Data:      b,
	}, nil
}
