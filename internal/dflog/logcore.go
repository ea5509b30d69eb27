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

package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	DefaultRotateMaxSize    = 1024
	DefaultRotateMaxBackups = 20
	DefaultRotateMaxAge     = 7
)

const (
	encodeTimeFormat = "2006-01-02 15:04:05.000"
)

var levels []zap.AtomicLevel

// LogRotateConfig is the rotation policy of file loggers.
type LogRotateConfig struct {
	// Maximum size in megabytes of log files before rotation.
	MaxSize int

	// Maximum number of days to retain old log files.
	MaxAge int

	// Maximum number of old log files to keep.
	MaxBackups int
}

// CreateLogger creates a json logger writing to filePath with rotation.
func CreateLogger(filePath string, compress bool, verbose bool, rotateConfig LogRotateConfig) (*zap.Logger, zap.AtomicLevel, error) {
	if rotateConfig.MaxSize <= 0 {
		rotateConfig.MaxSize = DefaultRotateMaxSize
	}

	if rotateConfig.MaxAge <= 0 {
		rotateConfig.MaxAge = DefaultRotateMaxAge
	}

	if rotateConfig.MaxBackups <= 0 {
		rotateConfig.MaxBackups = DefaultRotateMaxBackups
	}

	syncer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    rotateConfig.MaxSize,
		MaxAge:     rotateConfig.MaxAge,
		MaxBackups: rotateConfig.MaxBackups,
		LocalTime:  true,
		Compress:   compress,
	})

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(encodeTimeFormat)

	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		syncer,
		level,
	)

	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zap.WarnLevel), zap.AddCallerSkip(1)), level, nil
}
