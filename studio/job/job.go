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

//go:generate mockgen -destination mocks/job_mock.go -source job.go -package mocks

package job

import (
	"context"
	"errors"

	internaljob "d7y.io/studio/internal/job"
	"d7y.io/studio/studio/config"
)

// Job dispatches studio work to the compute worker.
type Job interface {
	// CreateEda sends an EDA task.
	CreateEda(context.Context, *internaljob.EdaRequest) (*internaljob.GroupJobState, error)

	// CreateTraining sends one training task per algorithm as a group.
	CreateTraining(context.Context, []*internaljob.TrainRequest) (*internaljob.GroupJobState, error)

	// CreateHypothesis sends a hypothesis test of target and features.
	CreateHypothesis(context.Context, *internaljob.HypothesisRequest) (*internaljob.GroupJobState, error)

	// CreateFlow sends an ingestion flow execution.
	CreateFlow(context.Context, *internaljob.FlowRequest) (*internaljob.GroupJobState, error)

	// GetGroupJobState returns the state of a dispatched group.
	GetGroupJobState(string) (*internaljob.GroupJobState, error)
}

// groupSender is the part of internal job used to dispatch.
type groupSender interface {
	SendGroup(ctx context.Context, name string, requests ...any) (*internaljob.GroupJobState, error)
	GetGroupJobState(groupID string) (*internaljob.GroupJobState, error)
}

type job struct {
	sender groupSender
}

// New returns a new Job.
func New(cfg *config.Config) (Job, error) {
	queue, err := internaljob.GetQueue(cfg.Job.Queue)
	if err != nil {
		return nil, err
	}

	j, err := internaljob.New(&internaljob.Config{
		Addrs:      cfg.Database.Redis.Addrs,
		MasterName: cfg.Database.Redis.MasterName,
		Username:   cfg.Database.Redis.Username,
		Password:   cfg.Database.Redis.Password,
		BrokerDB:   cfg.Database.Redis.BrokerDB,
		BackendDB:  cfg.Database.Redis.BackendDB,
	}, queue)
	if err != nil {
		return nil, err
	}

	return &job{sender: j}, nil
}

// CreateEda sends an EDA task.
func (j *job) CreateEda(ctx context.Context, req *internaljob.EdaRequest) (*internaljob.GroupJobState, error) {
	if req.Filename == "" {
		return nil, errors.New("eda requires a dataset")
	}

	return j.sender.SendGroup(ctx, internaljob.EdaJob, req)
}

// CreateTraining sends one training task per algorithm as a group.
func (j *job) CreateTraining(ctx context.Context, reqs []*internaljob.TrainRequest) (*internaljob.GroupJobState, error) {
	if len(reqs) == 0 {
		return nil, errors.New("training requires at least one algorithm")
	}

	requests := make([]any, 0, len(reqs))
	for _, req := range reqs {
		if req.Algorithm.AlgoID == "" {
			return nil, errors.New("training request requires an algorithm id")
		}

		requests = append(requests, req)
	}

	return j.sender.SendGroup(ctx, internaljob.TrainJob, requests...)
}

// CreateHypothesis sends a hypothesis test of target and features.
func (j *job) CreateHypothesis(ctx context.Context, req *internaljob.HypothesisRequest) (*internaljob.GroupJobState, error) {
	return j.sender.SendGroup(ctx, internaljob.HypothesisJob, req)
}

// CreateFlow sends an ingestion flow execution.
func (j *job) CreateFlow(ctx context.Context, req *internaljob.FlowRequest) (*internaljob.GroupJobState, error) {
	if req.FlowRef == "" {
		return nil, errors.New("flow requires a flow id")
	}

	return j.sender.SendGroup(ctx, internaljob.FlowJob, req)
}

// GetGroupJobState returns the state of a dispatched group.
func (j *job) GetGroupJobState(groupID string) (*internaljob.GroupJobState, error) {
	return j.sender.GetGroupJobState(groupID)
}
