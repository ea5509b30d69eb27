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

package compute

import (
	logger "d7y.io/studio/internal/dflog"
)

// retryLogger writes retryablehttp logs to the core logger.
type retryLogger struct{}

func (l *retryLogger) Error(msg string, keysAndValues ...any) {
	logger.CoreLogger.Errorw(msg, keysAndValues...)
}

func (l *retryLogger) Info(msg string, keysAndValues ...any) {
	logger.CoreLogger.Debugw(msg, keysAndValues...)
}

func (l *retryLogger) Debug(msg string, keysAndValues ...any) {
	logger.CoreLogger.Debugw(msg, keysAndValues...)
}

func (l *retryLogger) Warn(msg string, keysAndValues ...any) {
	logger.CoreLogger.Warnw(msg, keysAndValues...)
}
