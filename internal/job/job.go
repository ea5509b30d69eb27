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
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/RichardKnop/machinery/v1"
	machineryv1config "github.com/RichardKnop/machinery/v1/config"
	machineryv1log "github.com/RichardKnop/machinery/v1/log"
	machineryv1tasks "github.com/RichardKnop/machinery/v1/tasks"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	logger "d7y.io/studio/internal/dflog"
)

// Config is the redis broker and result backend of machinery.
type Config struct {
	Addrs      []string
	MasterName string
	Username   string
	Password   string
	BrokerDB   int
	BackendDB  int
}

// Job dispatches tasks to the compute worker through machinery.
type Job struct {
	Server *machinery.Server
	Queue  Queue
}

// New returns a Job publishing to queue.
func New(cfg *Config, queue Queue) (*Job, error) {
	machineryv1log.Set(NewMachineryLogger())

	if err := ping(&redis.UniversalOptions{
		Addrs:      cfg.Addrs,
		MasterName: cfg.MasterName,
		Username:   cfg.Username,
		Password:   cfg.Password,
		DB:         cfg.BackendDB,
	}); err != nil {
		return nil, err
	}

	server, err := machinery.NewServer(&machineryv1config.Config{
		Broker:          redisURL(cfg.Password, cfg.Addrs, cfg.BrokerDB),
		DefaultQueue:    queue.String(),
		ResultBackend:   redisURL(cfg.Password, cfg.Addrs, cfg.BackendDB),
		ResultsExpireIn: DefaultResultsExpireIn,
		Redis: &machineryv1config.RedisConfig{
			MasterName:     cfg.MasterName,
			MaxIdle:        DefaultRedisMaxIdle,
			IdleTimeout:    DefaultRedisIdleTimeout,
			ReadTimeout:    DefaultRedisReadTimeout,
			WriteTimeout:   DefaultRedisWriteTimeout,
			ConnectTimeout: DefaultRedisConnectTimeout,
		},
	})
	if err != nil {
		return nil, err
	}

	return &Job{
		Server: server,
		Queue:  queue,
	}, nil
}

func redisURL(password string, addrs []string, db int) string {
	return fmt.Sprintf("redis://%s@%s/%d", url.QueryEscape(password), strings.Join(addrs, ","), db)
}

func ping(options *redis.UniversalOptions) error {
	client := redis.NewUniversalClient(options)
	defer client.Close()

	return client.Ping(context.Background()).Err()
}

// GroupJobState is the aggregated state of the tasks of a group.
type GroupJobState struct {
	GroupUUID string
	State     string
	CreatedAt time.Time
	JobStates []*machineryv1tasks.TaskState
}

// NewSignatures builds one task signature of name per request, routed to
// queue.
func NewSignatures(queue Queue, name string, requests ...any) ([]*machineryv1tasks.Signature, error) {
	if len(requests) == 0 {
		return nil, errors.New("requests are empty")
	}

	signatures := make([]*machineryv1tasks.Signature, 0, len(requests))
	for _, req := range requests {
		args, err := MarshalRequest(req)
		if err != nil {
			return nil, fmt.Errorf("marshal %s request: %w", name, err)
		}

		signatures = append(signatures, &machineryv1tasks.Signature{
			UUID:       fmt.Sprintf("task_%s", uuid.New().String()),
			Name:       name,
			RoutingKey: queue.String(),
			Args:       args,
		})
	}

	return signatures, nil
}

// SendGroup sends one task of name per request as a single group.
func (j *Job) SendGroup(ctx context.Context, name string, requests ...any) (*GroupJobState, error) {
	signatures, err := NewSignatures(j.Queue, name, requests...)
	if err != nil {
		return nil, err
	}

	group, err := machineryv1tasks.NewGroup(signatures...)
	if err != nil {
		return nil, err
	}

	logger.JobLogger.Infof("send %s group %s with %d tasks to queue %s", name, group.GroupUUID, len(signatures), j.Queue)
	if _, err := j.Server.SendGroupWithContext(ctx, group, 0); err != nil {
		logger.JobLogger.Errorf("send %s group %s failed: %v", name, group.GroupUUID, err)
		return nil, err
	}

	return &GroupJobState{
		GroupUUID: group.GroupUUID,
		State:     machineryv1tasks.StatePending,
		CreatedAt: time.Now(),
	}, nil
}

// GetGroupJobState reports failure as soon as one task failed and success
// only when every task succeeded.
func (j *Job) GetGroupJobState(groupID string) (*GroupJobState, error) {
	taskStates, err := j.Server.GetBackend().GroupTaskStates(groupID, 0)
	if err != nil {
		return nil, err
	}

	return AggregateGroupState(groupID, taskStates)
}

// AggregateGroupState folds task states into the state of their group.
func AggregateGroupState(groupID string, taskStates []*machineryv1tasks.TaskState) (*GroupJobState, error) {
	if len(taskStates) == 0 {
		return nil, errors.New("empty group")
	}

	for _, taskState := range taskStates {
		if taskState.IsFailure() {
			logger.WithGroupAndTaskID(groupID, taskState.TaskUUID).Errorf("task failed: %s", taskState.Error)
			return &GroupJobState{
				GroupUUID: groupID,
				State:     machineryv1tasks.StateFailure,
				CreatedAt: taskState.CreatedAt,
				JobStates: taskStates,
			}, nil
		}
	}

	for _, taskState := range taskStates {
		if !taskState.IsSuccess() {
			logger.WithGroupAndTaskID(groupID, taskState.TaskUUID).Debugf("task is %s", taskState.State)
			return &GroupJobState{
				GroupUUID: groupID,
				State:     machineryv1tasks.StatePending,
				CreatedAt: taskState.CreatedAt,
				JobStates: taskStates,
			}, nil
		}
	}

	return &GroupJobState{
		GroupUUID: groupID,
		State:     machineryv1tasks.StateSuccess,
		CreatedAt: taskStates[0].CreatedAt,
		JobStates: taskStates,
	}, nil
}

// MarshalRequest encodes v as the single string argument of a task.
func MarshalRequest(v any) ([]machineryv1tasks.Arg, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	return []machineryv1tasks.Arg{{
		Type:  "string",
		Value: string(b),
	}}, nil
}

// UnmarshalRequest decodes the string argument of a task into v.
func UnmarshalRequest(data string, v any) error {
	return json.Unmarshal([]byte(data), v)
}
