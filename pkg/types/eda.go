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
	"bytes"
	"encoding/json"
	"strconv"
)

const (
	// EdaModeAuto lets the worker choose a strategy per feature.
	EdaModeAuto = "auto"

	// EdaModeManual applies the strategies chosen by the user.
	EdaModeManual = "manual"
)

// Missing value strategies.
const (
	StrategyMin    = "Min"
	StrategyMedian = "Median"
	StrategyMax    = "Max"
	StrategyMean   = "Mean"
	StrategyMode   = "Mode"
	StrategyStDev  = "St.Dev"
	StrategyBinary = "Binary"
	StrategyCustom = "Custom"

	// DefaultStrategy is preselected for every feature.
	DefaultStrategy = StrategyMean
)

// Strategies is the closed set of missing value strategies in display order.
var Strategies = []string{
	StrategyMin,
	StrategyMedian,
	StrategyMax,
	StrategyMean,
	StrategyMode,
	StrategyStDev,
	StrategyBinary,
	StrategyCustom,
}

// IsStrategy reports whether s is a missing value strategy.
func IsStrategy(s string) bool {
	for _, strategy := range Strategies {
		if strategy == s {
			return true
		}
	}

	return false
}

// Feature data types reported in the EDA summary.
const (
	DataTypeNumeric     = "Numeric"
	DataTypeCategorical = "Categorical"
	DataTypeText        = "Text"
	DataTypeBoolean     = "Boolean"
	DataTypeDatetime    = "Datetime"
)

// FeatureStrategy is the missing value strategy of one feature.
type FeatureStrategy struct {
	FeatureName string `json:"featureName" binding:"required"`
	Strategy    string `json:"strategy" binding:"required,strategy"`
	CustomValue string `json:"customValue,omitempty"`
}

// Stat is a summary statistic. The worker reports numbers for numeric
// features and strings such as "NA" otherwise.
type Stat string

func (s *Stat) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*s = ""
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}

		*s = Stat(str)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}

	*s = Stat(n.String())
	return nil
}

func (s Stat) MarshalJSON() ([]byte, error) {
	if _, ok := s.Float(); ok {
		return []byte(s), nil
	}

	return json.Marshal(string(s))
}

// MarshalCSV writes the statistic as is.
func (s Stat) MarshalCSV() (string, error) {
	return string(s), nil
}

// Float returns the numeric value of s.
func (s Stat) Float() (float64, bool) {
	f, err := strconv.ParseFloat(string(s), 64)
	if err != nil {
		return 0, false
	}

	return f, true
}

// SummaryRow holds the descriptive statistics of one feature.
type SummaryRow struct {
	ColName       string `json:"col_name" csv:"Feature Name"`
	DataType      string `json:"data_type" csv:"Var Type"`
	DataMissValue Stat   `json:"data_miss_value" csv:"Missing"`
	DataUnique    Stat   `json:"data_unique" csv:"Unique"`
	DataMean      Stat   `json:"data_mean" csv:"Mean"`
	DStd          Stat   `json:"d_std" csv:"SD"`
	DataMin       Stat   `json:"data_min" csv:"Min"`
	DataMax       Stat   `json:"data_max" csv:"Max"`
	DataMedian    Stat   `json:"data_median" csv:"Median"`
	DataStrategy  string `json:"data_strategy" csv:"Strategy"`
}

// HasMissingValues reports whether the feature has at least one missing value.
func (r SummaryRow) HasMissingValues() bool {
	missing, ok := r.DataMissValue.Float()
	return ok && missing > 0
}

// TargetCandidates returns the features that can be selected as target.
// Features chosen by the worker take precedence over the summary, from
// which datetime features are excluded.
func TargetCandidates(targetFeatures []string, summary []SummaryRow) []string {
	if len(targetFeatures) > 0 {
		return append([]string(nil), targetFeatures...)
	}

	candidates := make([]string, 0, len(summary))
	for _, row := range summary {
		if row.DataType == DataTypeDatetime {
			continue
		}

		candidates = append(candidates, row.ColName)
	}

	return candidates
}
