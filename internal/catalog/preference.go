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

package catalog

import (
	"fmt"
)

// Preference holds the hyperparameter overrides of one algorithm.
type Preference struct {
	AlgoID   string         `json:"algoId" binding:"required"`
	AlgoName string         `json:"algoName"`
	Fields   map[string]any `json:"fields"`
}

// SavePreference replaces the preference of the same algorithm or appends
// it, so prefs never holds two entries for one algorithm.
func SavePreference(prefs []Preference, pref Preference) []Preference {
	for i := range prefs {
		if prefs[i].AlgoID == pref.AlgoID {
			prefs[i] = pref
			return prefs
		}
	}

	return append(prefs, pref)
}

// MergePreferences returns one preference per algorithm id, in the order of
// ids. Fields missing from a saved preference take the catalog default and
// algorithms without a saved preference get all defaults.
func (c *Catalog) MergePreferences(ids []string, prefs []Preference) ([]Preference, error) {
	saved := make(map[string]Preference, len(prefs))
	for _, pref := range prefs {
		saved[pref.AlgoID] = pref
	}

	merged := make([]Preference, 0, len(ids))
	for _, id := range ids {
		algorithm, err := c.Algorithm(id)
		if err != nil {
			return nil, err
		}

		fields, err := c.Defaults(id)
		if err != nil {
			return nil, err
		}

		if pref, ok := saved[id]; ok {
			for name, value := range pref.Fields {
				if _, ok := fields[name]; !ok {
					return nil, fmt.Errorf("algorithm %s has no hyperparameter %q", id, name)
				}

				fields[name] = value
			}
		}

		merged = append(merged, Preference{
			AlgoID:   algorithm.ID,
			AlgoName: algorithm.Name,
			Fields:   fields,
		})
	}

	return merged, nil
}
