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

package service

import (
	"context"
	"errors"

	"d7y.io/studio/internal/catalog"
	"d7y.io/studio/internal/dferrors"
	"d7y.io/studio/studio/types"
)

// GetAlgorithms lists the catalog, narrowed to a problem type and to
// multilabel support when asked.
func (s *service) GetAlgorithms(ctx context.Context, q types.GetAlgorithmsQuery) []catalog.Algorithm {
	algorithms := s.catalog.Algorithms()
	multilabel := q.Multilabel != nil && *q.Multilabel
	if q.Type != "" {
		return catalog.FilterAlgorithms(catalog.CorrelationResult{
			AlgoType:     catalog.Type(q.Type),
			IsMultilabel: multilabel,
		}, algorithms)
	}

	if !multilabel {
		return algorithms
	}

	var filtered []catalog.Algorithm
	for _, algorithm := range algorithms {
		if algorithm.Multilabel {
			filtered = append(filtered, algorithm)
		}
	}

	return filtered
}

func (s *service) GetAlgorithmFields(ctx context.Context, id string) ([]catalog.Field, error) {
	fields, err := s.catalog.Fields(id)
	if err != nil {
		if errors.Is(err, catalog.ErrUnknownAlgorithm) {
			return nil, dferrors.New(dferrors.CodeNotFound, err.Error())
		}

		return nil, err
	}

	return fields, nil
}
