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

type Job struct {
	BaseModel
	TaskID    string  `gorm:"column:task_id;type:varchar(256);not null;comment:group id" json:"taskId"`
	Type      string  `gorm:"column:type;type:varchar(256);comment:type" json:"type"`
	State     string  `gorm:"column:state;type:varchar(256);not null;default:'PENDING';comment:group state" json:"state"`
	ProjectID uint    `gorm:"column:project_id;index;comment:project id" json:"projectId"`
	RunID     uint    `gorm:"column:run_id;comment:eda or training run id" json:"runId"`
	Args      JSONMap `gorm:"column:args;not null;comment:task request args" json:"args"`
	Result    JSONMap `gorm:"column:result;comment:task result" json:"result"`
}
