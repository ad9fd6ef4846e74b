/*
Copyright © 2020 ConsenSys

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package zklog centralizes this module's zerolog configuration so
// every package logs through the same sink, level, and field
// conventions instead of each reaching for its own logger.
package zklog

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	logger = zerolog.New(defaultWriter()).With().Timestamp().Logger().Level(zerolog.InfoLevel)
)

func defaultWriter() io.Writer {
	return zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
}

// Logger returns the shared logger instance.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// SetOutput redirects future log records to w, replacing the default
// console writer (useful for CLI drivers that want plain-JSON output).
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = logger.Output(w)
}

// SetLevel adjusts the minimum severity that gets written.
func SetLevel(level zerolog.Level) {
	mu.Lock()
	defer mu.Unlock()
	logger = logger.Level(level)
}

// Named returns a child logger tagged with a "component" field, the
// convention every package in this module uses to identify its
// records (e.g. zklog.Named("groth16"), zklog.Named("msm")).
func Named(component string) zerolog.Logger {
	return Logger().With().Str("component", component).Logger()
}
