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

package types

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	pkgtypes "d7y.io/studio/pkg/types"
)

// RegisterValidations adds the studio binding tags to the gin validator.
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	if err := v.RegisterValidation("strategy", func(fl validator.FieldLevel) bool {
		return pkgtypes.IsStrategy(fl.Field().String())
	}); err != nil {
		return err
	}

	return v.RegisterValidation("edamode", func(fl validator.FieldLevel) bool {
		mode := fl.Field().String()
		return mode == pkgtypes.EdaModeAuto || mode == pkgtypes.EdaModeManual
	})
}
