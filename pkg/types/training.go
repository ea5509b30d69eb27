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

const (
	// ValidationCrossValidation splits the rows into NSplit folds.
	ValidationCrossValidation = "cv"

	// ValidationTrainValidationHoldout holds out TestSize percent of the rows.
	ValidationTrainValidationHoldout = "tvh"
)

// Cross validation techniques.
const (
	TechniqueKFold                  = "kFold"
	TechniqueStratifiedKFold        = "stratifiedKFold"
	TechniqueShuffleSplit           = "shuffleSplit"
	TechniqueStratifiedShuffleSplit = "stratifiedShuffleSplit"
)

const (
	// DefaultNSplit is the number of folds of a new cv strategy.
	DefaultNSplit = 5

	// DefaultTestSize is the holdout percentage of tvh and stratified shuffle split.
	DefaultTestSize = 20

	// FeatureScalingNone trains on unscaled features.
	FeatureScalingNone = "none"
)

// ValidationStrategy is how a model is validated.
type ValidationStrategy struct {
	Name      string `json:"name" binding:"required,oneof=cv tvh"`
	Technique string `json:"technique,omitempty" binding:"omitempty,oneof=kFold stratifiedKFold shuffleSplit stratifiedShuffleSplit"`
	NSplit    int    `json:"nSplit,omitempty" binding:"omitempty,min=2,max=20"`
	TestSize  int    `json:"testSize,omitempty" binding:"omitempty,min=1,max=99"`
}

// NewCVStrategy returns the default cross validation strategy.
func NewCVStrategy() ValidationStrategy {
	return ValidationStrategy{
		Name:      ValidationCrossValidation,
		Technique: TechniqueKFold,
		NSplit:    DefaultNSplit,
	}
}

// NewTVHStrategy returns the default holdout strategy.
func NewTVHStrategy() ValidationStrategy {
	return ValidationStrategy{
		Name:     ValidationTrainValidationHoldout,
		TestSize: DefaultTestSize,
	}
}

// Normalize applies the fixed test size of stratified shuffle split and
// fills missing defaults.
func (v ValidationStrategy) Normalize() ValidationStrategy {
	switch v.Name {
	case ValidationCrossValidation:
		if v.Technique == "" {
			v.Technique = TechniqueKFold
		}

		if v.NSplit == 0 {
			v.NSplit = DefaultNSplit
		}

		if v.Technique == TechniqueStratifiedShuffleSplit {
			v.TestSize = DefaultTestSize
		}
	case ValidationTrainValidationHoldout:
		if v.TestSize == 0 {
			v.TestSize = DefaultTestSize
		}
	}

	return v
}
