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

package redis

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

const (
	// KeyPrefix is the prefix of every studio key.
	KeyPrefix = "studio"

	// KeySeparator is the separator of redis key.
	KeySeparator = ":"
)

const (
	// ProjectsNamespace prefix of projects namespace cache key.
	ProjectsNamespace = "projects"

	// JobsNamespace prefix of job locks.
	JobsNamespace = "jobs"
)

// Options of the redis client.
type Options struct {
	Addrs      []string
	MasterName string
	Username   string
	Password   string
	DB         int
}

// NewRedis returns a new redis client.
func NewRedis(ctx context.Context, opts *Options) (redis.UniversalClient, error) {
	redis.SetLogger(&redisLogger{})
	client := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:      opts.Addrs,
		MasterName: opts.MasterName,
		DB:         opts.DB,
		Username:   opts.Username,
		Password:   opts.Password,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return client, nil
}

// IsEnabled check redis is enabled.
func IsEnabled(addrs []string) bool {
	return len(addrs) != 0
}

// MakeNamespaceKey make namespace key.
func MakeNamespaceKey(namespace string) string {
	return fmt.Sprintf("%s%s%s", KeyPrefix, KeySeparator, namespace)
}

// MakeKey make key in namespace.
func MakeKey(namespace, id string) string {
	return fmt.Sprintf("%s%s%s", MakeNamespaceKey(namespace), KeySeparator, id)
}

// MakeProjectKey make cache key of a project.
func MakeProjectKey(projectID uint) string {
	return MakeKey(ProjectsNamespace, fmt.Sprint(projectID))
}

// MakeJobLockKey make key of the supervision lock of a job group.
func MakeJobLockKey(groupID string) string {
	return MakeKey(JobsNamespace, fmt.Sprintf("%s-lock", groupID))
}
