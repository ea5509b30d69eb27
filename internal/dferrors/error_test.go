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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		expect func(t *testing.T, err error)
	}{
		{
			name: "validation error",
			err:  New(CodeValidation, "Please select features."),
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.True(IsValidation(err))
				assert.False(IsConflict(err))
				assert.EqualError(err, "[400]Please select features.")
			},
		},
		{
			name: "wrapped conflict error",
			err:  fmt.Errorf("start eda: %w", Newf(CodeConflict, "project %d is busy", 1)),
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.True(IsConflict(err))
				assert.False(IsNotFound(err))
			},
		},
		{
			name: "plain error",
			err:  errors.New("foo"),
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.False(IsValidation(err))
				assert.False(IsNotFound(err))
				assert.False(IsConflict(err))
			},
		},
		{
			name: "nil error",
			err:  nil,
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.False(CheckError(err, CodeValidation))
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.expect(t, tc.err)
		})
	}
}
