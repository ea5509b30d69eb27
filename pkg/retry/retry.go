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

package retry

import (
	"context"
	"math"
	"math/rand"
	"time"
)

// Func is one attempt. cancel stops retrying regardless of err.
type Func func() (data any, cancel bool, err error)

// Run calls f until it succeeds, cancels, maxAttempts is reached or ctx is
// done. Attempts are separated by an exponential backoff with jitter,
// bounded by initBackoff and maxBackoff seconds.
func Run(ctx context.Context, initBackoff, maxBackoff float64, maxAttempts int, f Func) (any, bool, error) {
	var (
		res    any
		cancel bool
		cause  error
	)
	for i := 0; i < maxAttempts; i++ {
		if i > 0 {
			timer := time.NewTimer(Backoff(initBackoff, maxBackoff, i))
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil, cancel, ctx.Err()
			case <-timer.C:
			}
		}

		res, cancel, cause = f()
		if cause == nil || cancel {
			break
		}
	}

	return res, cancel, cause
}

// Backoff returns the delay before the given attempt, a random duration
// between initBackoff and initBackoff*2^attempt seconds, capped at
// maxBackoff seconds.
func Backoff(initBackoff, maxBackoff float64, attempt int) time.Duration {
	upper := math.Min(initBackoff*math.Pow(2, float64(attempt)), maxBackoff)
	if upper <= initBackoff {
		return time.Duration(upper * float64(time.Second))
	}

	seconds := initBackoff + rand.Float64()*(upper-initBackoff)
	return time.Duration(seconds * float64(time.Second))
}
