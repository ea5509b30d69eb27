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

package wizard

import (
	"errors"
	"fmt"

	"d7y.io/studio/client/studioclient"
	"d7y.io/studio/internal/dferrors"
	logger "d7y.io/studio/internal/dflog"
)

// Level is the severity of a user facing message.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"

	// LevelAlert blocks the user until acknowledged.
	LevelAlert Level = "alert"
)

// Notifier surfaces messages to the user.
type Notifier interface {
	Notify(level Level, message string)
}

// logNotifier writes messages to the core logger.
type logNotifier struct{}

func (logNotifier) Notify(level Level, message string) {
	switch level {
	case LevelError, LevelAlert:
		logger.CoreLogger.Warnf("[%s] %s", level, message)
	default:
		logger.CoreLogger.Infof("[%s] %s", level, message)
	}
}

// RequestError is a failed request of an action. The view model has been
// rolled back when it is returned.
type RequestError struct {
	Op  string
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Err.Error())
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// serverMessage returns the message of the server, or fallback when the
// response carried none.
func serverMessage(err error, fallback string) string {
	var statusErr *studioclient.StatusError
	if errors.As(err, &statusErr) && statusErr.Message != "" {
		return statusErr.Message
	}

	return fallback
}

// errorMessage returns the message of a rejected action without its code.
func errorMessage(err error) string {
	var dfErr *dferrors.DfError
	if errors.As(err, &dfErr) {
		return dfErr.Message
	}

	return err.Error()
}
