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
	_ "embed"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

//go:embed algorithms.yaml
var algorithmsYAML []byte

// Type is the problem type an algorithm solves.
type Type string

const (
	TypeRegression     Type = "regression"
	TypeClassification Type = "classification"
)

// FieldType is the input kind of a hyperparameter field.
type FieldType string

const (
	FieldTypeRadio  FieldType = "radio"
	FieldTypeNumber FieldType = "number"
	FieldTypeText   FieldType = "text"
	FieldTypeSelect FieldType = "select"
)

var (
	// ErrUnknownAlgorithm is returned when an algorithm id is not in the catalog.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)

// Option is a choice of a radio or select field.
type Option struct {
	Label string `yaml:"label" json:"label"`
	Value any    `yaml:"value" json:"value"`
}

// Field describes one hyperparameter of an algorithm.
type Field struct {
	Type        FieldType `yaml:"type" json:"type"`
	Name        string    `yaml:"name" json:"name"`
	Label       string    `yaml:"label" json:"label"`
	Required    bool      `yaml:"required" json:"required"`
	Default     any       `yaml:"default" json:"data"`
	Options     []Option  `yaml:"options,omitempty" json:"options,omitempty"`
	Placeholder string    `yaml:"placeholder,omitempty" json:"placeholder,omitempty"`

	// DisplayFor lists the parent values for which a sub field is shown.
	DisplayFor []string `yaml:"displayFor,omitempty" json:"displayFor,omitempty"`
	SubFields  []Field  `yaml:"subFields,omitempty" json:"subFields,omitempty"`
}

// Algorithm is a trainable algorithm and its hyperparameter form.
type Algorithm struct {
	ID         string  `yaml:"id" json:"id"`
	Name       string  `yaml:"name" json:"name"`
	Type       Type    `yaml:"type" json:"type"`
	Multilabel bool    `yaml:"multilabel" json:"multilabel"`
	URL        string  `yaml:"url" json:"url"`
	Fields     []Field `yaml:"fields" json:"-"`
}

// Catalog is an immutable set of algorithms keyed by id.
type Catalog struct {
	algorithms []Algorithm
	byID       map[string]int
	byName     map[string]int
}

// New returns the built-in catalog.
func New() (*Catalog, error) {
	return Parse(algorithmsYAML)
}

// Load reads a catalog document from r.
func Load(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return Parse(data)
}

// Parse decodes a catalog document and checks its entries.
func Parse(data []byte) (*Catalog, error) {
	var doc struct {
		Algorithms []Algorithm `yaml:"algorithms"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	c := &Catalog{
		algorithms: doc.Algorithms,
		byID:       make(map[string]int, len(doc.Algorithms)),
		byName:     make(map[string]int, len(doc.Algorithms)),
	}
	for i, algorithm := range doc.Algorithms {
		if algorithm.ID == "" {
			return nil, fmt.Errorf("algorithm %q requires id", algorithm.Name)
		}

		if algorithm.Type != TypeRegression && algorithm.Type != TypeClassification {
			return nil, fmt.Errorf("algorithm %s has invalid type %q", algorithm.ID, algorithm.Type)
		}

		if _, ok := c.byID[algorithm.ID]; ok {
			return nil, fmt.Errorf("duplicate algorithm id %s", algorithm.ID)
		}
		c.byID[algorithm.ID] = i

		if _, ok := c.byName[algorithm.Name]; ok {
			return nil, fmt.Errorf("duplicate algorithm name %q", algorithm.Name)
		}
		c.byName[algorithm.Name] = i
	}

	return c, nil
}

// Algorithms returns every algorithm in catalog order.
func (c *Catalog) Algorithms() []Algorithm {
	return append([]Algorithm(nil), c.algorithms...)
}

// Algorithm returns the algorithm with id.
func (c *Catalog) Algorithm(id string) (Algorithm, error) {
	i, ok := c.byID[id]
	if !ok {
		return Algorithm{}, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, id)
	}

	return c.algorithms[i], nil
}

// Fields returns the hyperparameter fields of the algorithm with id.
func (c *Catalog) Fields(id string) ([]Field, error) {
	algorithm, err := c.Algorithm(id)
	if err != nil {
		return nil, err
	}

	return append([]Field(nil), algorithm.Fields...), nil
}

// LookupName resolves a display name reported by the compute worker.
func (c *Catalog) LookupName(name string) (Algorithm, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Algorithm{}, false
	}

	return c.algorithms[i], true
}

// Defaults returns the default value of every field and sub field of the
// algorithm with id.
func (c *Catalog) Defaults(id string) (map[string]any, error) {
	fields, err := c.Fields(id)
	if err != nil {
		return nil, err
	}

	values := make(map[string]any)
	collectDefaults(fields, values)
	return values, nil
}

func collectDefaults(fields []Field, values map[string]any) {
	for _, field := range fields {
		values[field.Name] = field.Default
		collectDefaults(field.SubFields, values)
	}
}
