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

package job

import (
	"strings"
	"testing"
	"time"

	machineryv1tasks "github.com/RichardKnop/machinery/v1/tasks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"d7y.io/studio/internal/catalog"
)

func TestNewSignatures(t *testing.T) {
	tests := []struct {
		name     string
		requests []any
		expect   func(t *testing.T, signatures []*machineryv1tasks.Signature, err error)
	}{
		{
			name: "one signature per algorithm",
			requests: []any{
				TrainRequest{ProjectID: 1, Algorithm: catalog.Preference{AlgoID: "1simple_linear_regression"}},
				TrainRequest{ProjectID: 1, Algorithm: catalog.Preference{AlgoID: "2polynomial_regression"}},
			},
			expect: func(t *testing.T, signatures []*machineryv1tasks.Signature, err error) {
				assert := assert.New(t)
				require.NoError(t, err)
				assert.Len(signatures, 2)
				assert.NotEqual(signatures[0].UUID, signatures[1].UUID)
				for _, signature := range signatures {
					assert.True(strings.HasPrefix(signature.UUID, "task_"))
					assert.Equal(TrainJob, signature.Name)
					assert.Equal("compute", signature.RoutingKey)
					assert.Len(signature.Args, 1)
					assert.Equal("string", signature.Args[0].Type)
				}

				var req TrainRequest
				assert.NoError(UnmarshalRequest(signatures[1].Args[0].Value.(string), &req))
				assert.Equal("2polynomial_regression", req.Algorithm.AlgoID)
			},
		},
		{
			name: "empty requests",
			expect: func(t *testing.T, signatures []*machineryv1tasks.Signature, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "requests are empty")
			},
		},
		{
			name:     "unsupported request",
			requests: []any{make(chan int)},
			expect: func(t *testing.T, signatures []*machineryv1tasks.Signature, err error) {
				assert := assert.New(t)
				assert.Error(err)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			signatures, err := NewSignatures(ComputeQueue, TrainJob, tc.requests...)
			tc.expect(t, signatures, err)
		})
	}
}

func TestAggregateGroupState(t *testing.T) {
	createdAt := time.Now()
	tests := []struct {
		name   string
		states []*machineryv1tasks.TaskState
		expect func(t *testing.T, state *GroupJobState, err error)
	}{
		{
			name: "all succeeded",
			states: []*machineryv1tasks.TaskState{
				{TaskUUID: "a", State: machineryv1tasks.StateSuccess, CreatedAt: createdAt},
				{TaskUUID: "b", State: machineryv1tasks.StateSuccess},
			},
			expect: func(t *testing.T, state *GroupJobState, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(machineryv1tasks.StateSuccess, state.State)
				assert.Equal(createdAt, state.CreatedAt)
			},
		},
		{
			name: "one pending",
			states: []*machineryv1tasks.TaskState{
				{TaskUUID: "a", State: machineryv1tasks.StateSuccess},
				{TaskUUID: "b", State: machineryv1tasks.StateStarted},
			},
			expect: func(t *testing.T, state *GroupJobState, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(machineryv1tasks.StatePending, state.State)
			},
		},
		{
			name: "failure wins over pending",
			states: []*machineryv1tasks.TaskState{
				{TaskUUID: "a", State: machineryv1tasks.StatePending},
				{TaskUUID: "b", State: machineryv1tasks.StateFailure, Error: "worker lost"},
			},
			expect: func(t *testing.T, state *GroupJobState, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(machineryv1tasks.StateFailure, state.State)
				assert.Len(state.JobStates, 2)
			},
		},
		{
			name: "empty group",
			expect: func(t *testing.T, state *GroupJobState, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "empty group")
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			state, err := AggregateGroupState("group_1", tc.states)
			tc.expect(t, state, err)
		})
	}
}

func TestGetQueue(t *testing.T) {
	assert := assert.New(t)

	queue, err := GetQueue("")
	assert.NoError(err)
	assert.Equal(ComputeQueue, queue)

	queue, err = GetQueue("gpu")
	assert.NoError(err)
	assert.Equal(Queue("compute_gpu"), queue)

	_, err = GetQueue(strings.Repeat("a", 65))
	assert.Error(err)
}
