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

package dferrors

import (
	"errors"
	"fmt"
)

// Code classifies a DfError.
type Code int

const (
	// CodeValidation means the request is malformed or not allowed in the
	// current state.
	CodeValidation Code = 400

	// CodeNotFound means the referenced resource does not exist.
	CodeNotFound Code = 404

	// CodeConflict means another operation is already in flight.
	CodeConflict Code = 409

	// CodeWorkerUnavailable means the compute worker could not be reached.
	CodeWorkerUnavailable Code = 503
)

type DfError struct {
	Code    Code
	Message string
}

func (s *DfError) Error() string {
	return fmt.Sprintf("[%d]%s", s.Code, s.Message)
}

func New(code Code, msg string) *DfError {
	return &DfError{
		Code:    code,
		Message: msg,
	}
}

func Newf(code Code, format string, a ...any) *DfError {
	return &DfError{
		Code:    code,
		Message: fmt.Sprintf(format, a...),
	}
}

// CheckError reports whether err wraps a DfError with the given code.
func CheckError(err error, code Code) bool {
	var e *DfError
	if !errors.As(err, &e) {
		return false
	}

	return e.Code == code
}

func IsValidation(err error) bool {
	return CheckError(err, CodeValidation)
}

func IsNotFound(err error) bool {
	return CheckError(err, CodeNotFound)
}

func IsConflict(err error) bool {
	return CheckError(err, CodeConflict)
}
