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

type Project struct {
	BaseModel
	Name             string         `gorm:"column:name;type:varchar(256);not null;comment:name" json:"name"`
	ProjectStatus    string         `gorm:"column:project_status;type:varchar(32);not null;default:'Project Created';comment:lifecycle status" json:"projectStatus"`
	Filename         string         `gorm:"column:filename;type:varchar(1024);comment:stored dataset path" json:"filename"`
	OriginalFilename string         `gorm:"column:original_filename;type:varchar(1024);comment:uploaded file name" json:"originalFilename"`
	FileEncoding     string         `gorm:"column:file_encoding;type:varchar(64);default:'utf-8';comment:dataset text encoding" json:"fileEncoding"`
	FlowID           *uint          `gorm:"column:flow_id;comment:ingestion flow id" json:"flowId"`
	Flow             *Flow          `json:"-"`
	Correlation      datatypes.JSON `gorm:"column:correlation;comment:latest hypothesis result" json:"correlation,omitempty"`
}
