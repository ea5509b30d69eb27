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
	"gorm.io/datatypes"
)

// Flow is an ingestion flow executed by the compute worker.
type Flow struct {
	BaseModel
	Name       string         `gorm:"column:name;type:varchar(256);not null;comment:name" json:"flowName"`
	FlowRef    string         `gorm:"column:flow_ref;type:varchar(256);not null;comment:external flow id" json:"flowId"`
	FlowType   string         `gorm:"column:flow_type;type:varchar(64);comment:flow type" json:"flowType"`
	Definition datatypes.JSON `gorm:"column:definition;comment:flow definition" json:"definition,omitempty"`
}
