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

package job

import (
	"fmt"

	"go.uber.org/zap"

	logger "d7y.io/studio/internal/dflog"
)

// MachineryLogger routes machinery logs to the job logger.
type MachineryLogger struct {
	log *zap.SugaredLogger
}

// NewMachineryLogger returns a logger tagged as machinery.
func NewMachineryLogger() *MachineryLogger {
	return &MachineryLogger{log: logger.JobLogger.With("component", "machinery")}
}

func (m *MachineryLogger) Print(args ...any) {
	m.log.Info(args...)
}

func (m *MachineryLogger) Printf(format string, args ...any) {
	m.log.Infof(format, args...)
}

func (m *MachineryLogger) Println(args ...any) {
	m.log.Info(fmt.Sprintln(args...))
}

func (m *MachineryLogger) Fatal(args ...any) {
	m.log.Fatal(args...)
}

func (m *MachineryLogger) Fatalf(format string, args ...any) {
	m.log.Fatalf(format, args...)
}

func (m *MachineryLogger) Fatalln(args ...any) {
	m.log.Fatal(fmt.Sprintln(args...))
}

func (m *MachineryLogger) Panic(args ...any) {
	m.log.Panic(args...)
}

func (m *MachineryLogger) Panicf(format string, args ...any) {
	m.log.Panicf(format, args...)
}

func (m *MachineryLogger) Panicln(args ...any) {
	m.log.Panic(fmt.Sprintln(args...))
}
