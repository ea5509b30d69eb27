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

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
	"gorm.io/plugin/soft_delete"
)

type BaseModel struct {
	ID        uint                  `gorm:"primarykey;comment:id" json:"id"`
	CreatedAt time.Time             `gorm:"column:created_at;type:timestamp;default:current_timestamp" json:"createdAt"`
	UpdatedAt time.Time             `gorm:"column:updated_at;type:timestamp;default:current_timestamp" json:"updatedAt"`
	IsDel     soft_delete.DeletedAt `gorm:"softDelete:flag;comment:soft delete flag" json:"-"`
}

// Paginate selects page of perPage rows, pages start at 1.
func Paginate(page, perPage int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		offset := (page - 1) * perPage
		return db.Offset(offset).Limit(perPage)
	}
}

// scanJSON decodes a text or blob column into v.
func scanJSON(val any, v any) error {
	var b []byte
	switch data := val.(type) {
	case []byte:
		b = data
	case string:
		b = []byte(data)
	case nil:
		return nil
	default:
		return fmt.Errorf("unsupported json column value %T", val)
	}

	return json.Unmarshal(b, v)
}

// JSONMap is a free form json object stored as text.
type JSONMap map[string]any

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}

	b, err := json.Marshal(map[string]any(m))
	return string(b), err
}

func (m *JSONMap) Scan(val any) error {
	t := map[string]any{}
	if err := scanJSON(val, &t); err != nil {
		return err
	}

	*m = t
	return nil
}

func (JSONMap) GormDataType() string {
	return "jsonmap"
}

func (JSONMap) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	return "text"
}

// Array is a list of strings stored as a json text column.
type Array []string

func (a Array) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}

	b, err := json.Marshal([]string(a))
	return string(b), err
}

func (a *Array) Scan(val any) error {
	t := []string{}
	if err := scanJSON(val, &t); err != nil {
		return err
	}

	*a = t
	return nil
}

func (Array) GormDataType() string {
	return "array"
}

func (Array) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	return "text"
}

// Contains reports whether s is in a.
func (a Array) Contains(s string) bool {
	for _, v := range a {
		if v == s {
			return true
		}
	}

	return false
}
