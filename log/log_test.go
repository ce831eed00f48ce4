// Copyright 2026 The NRBF Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package log

import (
	"bytes"
	"strings"
	"testing"
)

type recordingLogger struct {
	calls []Level
}

func (r *recordingLogger) Log(level Level, keyvals ...interface{}) error {
	r.calls = append(r.calls, level)
	return nil
}

func TestFilterDropsBelowLevel(t *testing.T) {
	rec := &recordingLogger{}
	filtered := NewFilter(rec, FilterLevel(LevelWarn))

	filtered.Log(LevelDebug, "msg", "dropped")
	filtered.Log(LevelInfo, "msg", "dropped")
	filtered.Log(LevelWarn, "msg", "kept")
	filtered.Log(LevelError, "msg", "kept")

	if len(rec.calls) != 2 {
		t.Fatalf("len(calls) = %d, want 2", len(rec.calls))
	}
	if rec.calls[0] != LevelWarn || rec.calls[1] != LevelError {
		t.Errorf("calls = %v, want [Warn Error]", rec.calls)
	}
}

func TestStdLoggerWritesLine(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStdLogger(&buf)

	if err := logger.Log(LevelInfo, "msg", "hello"); err != nil {
		t.Fatalf("Log() error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "level=INFO") {
		t.Errorf("output = %q, want it to contain %q", out, "level=INFO")
	}
	if !strings.Contains(out, "msg=hello") {
		t.Errorf("output = %q, want it to contain %q", out, "msg=hello")
	}
}

func TestHelperNilSafe(t *testing.T) {
	var h *Helper
	// None of these may panic, even on a nil *Helper.
	h.Debug("x")
	h.Infof("%d", 1)
	h.Warn("y")
	h.Error("z")
}

func TestHelperForwardsToLogger(t *testing.T) {
	rec := &recordingLogger{}
	h := NewHelper(rec)

	h.Debug("a")
	h.Infof("%d", 1)
	h.Warn("b")
	h.Errorf("%s", "c")

	want := []Level{LevelDebug, LevelInfo, LevelWarn, LevelError}
	if len(rec.calls) != len(want) {
		t.Fatalf("len(calls) = %d, want %d", len(rec.calls), len(want))
	}
	for i, w := range want {
		if rec.calls[i] != w {
			t.Errorf("calls[%d] = %v, want %v", i, rec.calls[i], w)
		}
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LevelFatal, "FATAL"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}
