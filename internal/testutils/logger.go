// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package testutils holds helpers shared by tests across packages.
package testutils

import (
	"fmt"
	"strings"
	"sync"
	"testing"
)

// Logger is a logger that writes to a testing.TB and retains every line it
// was given, so tests can assert on what a command logged.
type Logger struct {
	T testing.TB

	mu    sync.Mutex
	lines []string
}

func (l *Logger) record(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

// Infof implements the logger interface.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.record(format, args...)
	l.T.Logf(format, args...)
}

// Errorf implements the logger interface.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.record(format, args...)
	l.T.Logf(format, args...)
}

// Fatalf implements the logger interface.
func (l *Logger) Fatalf(format string, args ...interface{}) {
	l.T.Helper()
	l.record(format, args...)
	l.T.Fatalf(format, args...)
}

// String returns the logged lines joined by newlines.
func (l *Logger) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return strings.Join(l.lines, "\n")
}
