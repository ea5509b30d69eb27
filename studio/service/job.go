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

package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	machineryv1tasks "github.com/RichardKnop/machinery/v1/tasks"

	logger "d7y.io/studio/internal/dflog"
	internaljob "d7y.io/studio/internal/job"
	"d7y.io/studio/internal/lifecycle"
	pkgredis "d7y.io/studio/pkg/redis"
	"d7y.io/studio/pkg/retry"
	"d7y.io/studio/pkg/structure"
	"d7y.io/studio/studio/models"
	"d7y.io/studio/studio/notification"
	"d7y.io/studio/studio/types"
)

// createJob records a dispatched group and supervises it in the background.
func (s *service) createJob(ctx context.Context, name string, projectID, runID uint, req any, state *internaljob.GroupJobState) (*models.Job, error) {
	args, err := structure.StructToMap(req)
	if err != nil {
		return nil, err
	}

	job := models.Job{
		TaskID:    state.GroupUUID,
		Type:      name,
		State:     state.State,
		ProjectID: projectID,
		RunID:     runID,
		Args:      args,
	}

	if err := s.db.WithContext(ctx).Create(&job).Error; err != nil {
		return nil, err
	}

	go s.pollingJob(context.Background(), job)

	return &job, nil
}

func (s *service) GetJobs(ctx context.Context, projectID uint, q types.GetJobsQuery) ([]models.Job, int64, error) {
	if _, err := s.findProject(ctx, projectID); err != nil {
		return nil, 0, err
	}

	var count int64
	var jobs []models.Job
	if err := s.db.WithContext(ctx).Scopes(models.Paginate(q.Page, q.PerPage)).Where(&models.Job{
		ProjectID: projectID,
		Type:      q.Type,
		State:     q.State,
	}).Order("id DESC").Find(&jobs).Limit(-1).Offset(-1).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	return jobs, count, nil
}

// ResumeJobs supervises the jobs left unfinished by a previous run.
func (s *service) ResumeJobs(ctx context.Context) error {
	var jobs []models.Job
	if err := s.db.WithContext(ctx).Where("state NOT IN ?", []string{
		machineryv1tasks.StateSuccess,
		machineryv1tasks.StateFailure,
	}).Find(&jobs).Error; err != nil {
		return err
	}

	for _, job := range jobs {
		logger.WithGroupAndJobID(job.TaskID, fmt.Sprint(job.ID)).Info("resume polling group")
		go s.pollingJob(context.Background(), job)
	}

	return nil
}

// jobTimeout bounds the supervision of a job type.
func (s *service) jobTimeout(name string) time.Duration {
	switch name {
	case internaljob.EdaJob:
		return s.config.Job.EdaTimeout
	case internaljob.TrainJob:
		return s.config.Job.TrainTimeout
	case internaljob.HypothesisJob:
		return s.config.Job.HypothesisTimeout
	default:
		return s.config.Job.FlowTimeout
	}
}

// lockJob makes one replica the supervisor of a group. Without redis every
// replica supervises its own jobs.
func (s *service) lockJob(ctx context.Context, groupID string, ttl time.Duration) bool {
	if s.rdb == nil {
		return true
	}

	ok, err := s.rdb.SetNX(ctx, pkgredis.MakeJobLockKey(groupID), s.config.Server.PublicAddr, ttl).Result()
	if err != nil {
		logger.JobLogger.Warnf("lock group %s failed: %s", groupID, err.Error())
		return false
	}

	return ok
}

func (s *service) unlockJob(ctx context.Context, groupID string) {
	if s.rdb == nil {
		return
	}

	if err := s.rdb.Del(ctx, pkgredis.MakeJobLockKey(groupID)).Err(); err != nil {
		logger.JobLogger.Warnf("unlock group %s failed: %s", groupID, err.Error())
	}
}

func (s *service) pollingJob(ctx context.Context, job models.Job) {
	var (
		id      = job.ID
		groupID = job.TaskID
		log     = logger.WithGroupAndJobID(groupID, fmt.Sprint(id))
		timeout = s.jobTimeout(job.Type)
	)

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if !s.lockJob(ctx, groupID, timeout) {
		log.Info("group is supervised by another replica")
		return
	}
	defer s.unlockJob(context.Background(), groupID)

	polling := s.config.Job.Polling
	if _, _, err := retry.Run(ctx, polling.InitBackoff, polling.MaxBackoff, pollingAttempts(timeout, polling.InitBackoff), func() (any, bool, error) {
		groupJob, err := s.job.GetGroupJobState(groupID)
		if err != nil {
			log.Errorf("polling group failed: %s", err.Error())
			return nil, false, err
		}

		result, err := structure.StructToMap(groupJob)
		if err != nil {
			log.Errorf("polling group failed: %s", err.Error())
			return nil, false, err
		}

		err = s.db.WithContext(ctx).Model(&models.Job{}).Where("id = ?", id).Updates(models.Job{
			State:  groupJob.State,
			Result: result,
		}).Error
		if err != nil {
			log.Errorf("store group state failed: %s", err.Error())
		} else {
			job.State = groupJob.State
		}

		done, err := pollState(groupJob.State, err)
		if err == nil {
			log.Infof("polling group ended with %s", groupJob.State)
		}

		return nil, done, err
	}); err != nil {
		log.Errorf("polling group failed: %s", err.Error())
	}

	if job.State == machineryv1tasks.StateSuccess {
		return
	}

	// Polling timeout and failed.
	ctx = context.Background()
	if job.State != machineryv1tasks.StateFailure {
		if err := s.db.WithContext(ctx).Model(&models.Job{}).Where("id = ?", id).Updates(models.Job{
			State: machineryv1tasks.StateFailure,
		}).Error; err != nil {
			log.Errorf("polling group failed: %s", err.Error())
		}
		log.Error("polling group timeout")
	}

	if err := s.failJob(ctx, job); err != nil {
		log.Errorf("apply failure of group failed: %s", err.Error())
	}
}

// flowFailure names the flow of a failed group from its request args.
func flowFailure(job models.Job) string {
	var req struct {
		FlowID  uint   `json:"flow_id"`
		FlowRef string `json:"flow_ref"`
	}
	if err := structure.MapToStruct(job.Args, &req); err != nil {
		logger.WithGroupAndJobID(job.TaskID, fmt.Sprint(job.ID)).Warnf("decode flow request failed: %s", err.Error())
		return "flow job failed"
	}

	if req.FlowRef == "" {
		return "flow job failed"
	}

	return fmt.Sprintf("flow %s failed", req.FlowRef)
}

// pollingAttempts covers timeout even when every backoff is the shortest.
func pollingAttempts(timeout time.Duration, initBackoff float64) int {
	return int(math.Ceil(timeout.Seconds()/initBackoff)) + 1
}

// pollState tells whether polling a group ends. A group state that could
// not be stored keeps polling, so a transient database error never fails
// a healthy run.
func pollState(state string, stored error) (bool, error) {
	if stored != nil {
		return false, stored
	}

	switch state {
	case machineryv1tasks.StateSuccess, machineryv1tasks.StateFailure:
		return true, nil
	default:
		return false, fmt.Errorf("polling job state is %s", state)
	}
}

// failJob applies the failure of a group the worker never reported, so
// clients are not left waiting for an event.
func (s *service) failJob(ctx context.Context, job models.Job) error {
	switch job.Type {
	case internaljob.EdaJob:
		err := s.finishEda(ctx, job.ProjectID, job.RunID, lifecycle.StatusEdaFailed, models.EdaRun{
			Error: "eda job failed",
		})
		if errors.Is(err, errRunFinished) {
			return nil
		}

		return err
	case internaljob.TrainJob:
		err := s.failMissingModels(ctx, job.ProjectID, job.RunID, "training job failed")
		if errors.Is(err, errRunFinished) {
			return nil
		}

		return err
	case internaljob.FlowJob:
		s.publish(ctx, job.ProjectID, notification.EventUddFlowCompleted, notification.UddFlowCompleted{
			Status: notification.FlowStatusFailed,
			ErrMsg: flowFailure(job),
		})
		return nil
	default:
		return nil
	}
}
