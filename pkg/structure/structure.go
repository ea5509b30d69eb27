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

package structure

import (
	"encoding/json"

	"github.com/mitchellh/mapstructure"
)

// StructToMap converts a struct to a map keyed by its json names.
func StructToMap(t any) (map[string]any, error) {
	var m map[string]any
	b, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}

	return m, nil
}

// MapToStruct decodes m into the struct pointed to by t, matching json
// names and converting weakly typed values such as "5" to 5.
func MapToStruct(m map[string]any, t any) error {
	if m == nil {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           t,
	})
	if err != nil {
		return err
	}

	return decoder.Decode(m)
}
