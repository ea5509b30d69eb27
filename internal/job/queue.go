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
	"errors"
	"fmt"
)

// Queue is the routing key of a machinery queue.
type Queue string

const (
	// ComputeQueue is consumed by the compute workers.
	ComputeQueue Queue = "compute"
)

// GetQueue returns the queue of a worker pool, falling back to
// ComputeQueue for an empty name.
func GetQueue(name string) (Queue, error) {
	if name == "" {
		return ComputeQueue, nil
	}

	if len(name) > 64 {
		return "", errors.New("queue name is too long")
	}

	return Queue(fmt.Sprintf("%s_%s", ComputeQueue, name)), nil
}

func (q Queue) String() string {
	return string(q)
}
