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
	"strings"

	"d7y.io/studio/internal/dferrors"
)

var (
	ErrEmptyCustomValue     = dferrors.New(dferrors.CodeValidation, "Custom field value cannot be empty!")
	ErrModeStrategyRequired = dferrors.New(dferrors.CodeValidation, "Categorical,Text,Boolean and DateTime feature(s) can have only Mode strategy")
	ErrTargetRequired       = dferrors.New(dferrors.CodeValidation, "Please select target variable.")
	ErrFeaturesRequired     = dferrors.New(dferrors.CodeValidation, "Please select features.")
	ErrAlgorithmsRequired   = dferrors.New(dferrors.CodeValidation, "Please select algorithms.")
)

// CheckCustomValues rejects a manual EDA whose Custom strategies have no
// value. A value may come with the strategy or from custom, keyed by
// feature name.
func CheckCustomValues(mode string, strategies []FeatureStrategy, custom map[string]string) error {
	if mode != EdaModeManual {
		return nil
	}

	for _, strategy := range strategies {
		if strategy.Strategy != StrategyCustom {
			continue
		}

		value := strategy.CustomValue
		if value == "" {
			value = custom[strategy.FeatureName]
		}

		if strings.TrimSpace(value) == "" {
			return ErrEmptyCustomValue
		}
	}

	return nil
}

// CheckModeStrategies requires Mode for every non numeric feature with
// missing values.
func CheckModeStrategies(summary []SummaryRow) error {
	for _, row := range summary {
		if row.DataType != DataTypeNumeric && row.HasMissingValues() && row.DataStrategy != StrategyMode {
			return ErrModeStrategyRequired
		}
	}

	return nil
}

// CheckTrainingSelection checks target, features and algorithms in the
// order the user picks them. Features equal to the target are ignored.
func CheckTrainingSelection(target string, features, algorithms []string) error {
	if target == "" {
		return ErrTargetRequired
	}

	if len(IndependentVariables(target, features)) == 0 {
		return ErrFeaturesRequired
	}

	if len(algorithms) == 0 {
		return ErrAlgorithmsRequired
	}

	return nil
}

// IndependentVariables returns features without target and duplicates,
// keeping their order.
func IndependentVariables(target string, features []string) []string {
	seen := make(map[string]struct{}, len(features))
	res := make([]string, 0, len(features))
	for _, feature := range features {
		if feature == target || feature == "" {
			continue
		}

		if _, ok := seen[feature]; ok {
			continue
		}

		seen[feature] = struct{}{}
		res = append(res, feature)
	}

	return res
}
