// Copyright 2026 The Envguard Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package log is the logging facade used throughout envguard. Library code logs
// through the package level functions; callers decide where the output goes by
// installing a Logger with SetLogger. Nothing is logged until they do.
package log

import (
	"fmt"
	"sync"
)

var (
	mu  sync.RWMutex
	log Logger = SilentLogger{}
)

// Logger is the minimal leveled logger envguard needs. logrus.Logger and
// logrus.Entry satisfy it directly.
type Logger interface {
	Errorf(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Error(args ...interface{})
	Warn(args ...interface{})
	Debug(args ...interface{})
	Info(args ...interface{})
}

// SetLogger replaces the global logger. Passing nil restores the silent logger.
func SetLogger(l Logger) {
	mu.Lock()
	defer mu.Unlock()
	if l == nil {
		l = SilentLogger{}
	}

	log = l
}

// GetLogger returns the currently installed logger.
func GetLogger() Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// Errorf formats with fmt.Errorf so %w verbs render the wrapped error.
func Errorf(format string, args ...interface{}) {
	err := fmt.Errorf(format, args...)
	GetLogger().Error(err)
}

func Error(args ...interface{}) {
	GetLogger().Error(args...)
}

func Warnf(format string, args ...interface{}) {
	err := fmt.Errorf(format, args...)
	GetLogger().Warn(err)
}

func Warn(args ...interface{}) {
	GetLogger().Warn(args...)
}

func Debugf(format string, args ...interface{}) {
	GetLogger().Debugf(format, args...)
}

func Debug(args ...interface{}) {
	GetLogger().Debug(args...)
}

func Infof(format string, args ...interface{}) {
	GetLogger().Infof(format, args...)
}

func Info(args ...interface{}) {
	GetLogger().Info(args...)
}
