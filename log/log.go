// Copyright 2026 The NRBF Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package log is a small leveled logging abstraction, reconstructed from
// the exact call-site API the teacher (saferwall/pe) exercises against its
// own github.com/saferwall/pe/log subpackage — NewStdLogger, NewFilter,
// FilterLevel, NewHelper, and a *Helper with Debug/Debugf/Info/Infof/
// Warn/Warnf/Error/Errorf/Fatal/Fatalf — which was not included in the
// retrieved snapshot of that repository.
package log

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Level is a logging severity.
type Level int

// Severities, lowest to highest.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// Logger is the sink every Helper call eventually reaches.
type Logger interface {
	Log(level Level, keyvals ...interface{}) error
}

// stdLogger writes "<RFC3339 time> level=X msg=Y ..." lines to an io.Writer.
type stdLogger struct {
	w io.Writer
}

// NewStdLogger returns a Logger that writes plain text lines to w.
func NewStdLogger(w io.Writer) Logger {
	return &stdLogger{w: w}
}

func (s *stdLogger) Log(level Level, keyvals ...interface{}) error {
	if len(keyvals)%2 != 0 {
		keyvals = append(keyvals, "MISSING")
	}
	line := fmt.Sprintf("%s level=%s", time.Now().Format(time.RFC3339), level)
	for i := 0; i < len(keyvals); i += 2 {
		line += fmt.Sprintf(" %v=%v", keyvals[i], keyvals[i+1])
	}
	_, err := fmt.Fprintln(s.w, line)
	return err
}

// Option configures a filtering Logger built with NewFilter.
type Option func(*filter)

// FilterLevel drops any Log call below the given level.
func FilterLevel(level Level) Option {
	return func(f *filter) { f.level = level }
}

type filter struct {
	logger Logger
	level  Level
}

// NewFilter wraps logger so that only records at or above the configured
// level (default LevelDebug, i.e. everything) are forwarded.
func NewFilter(logger Logger, opts ...Option) Logger {
	f := &filter{logger: logger, level: LevelDebug}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *filter) Log(level Level, keyvals ...interface{}) error {
	if level < f.level {
		return nil
	}
	return f.logger.Log(level, keyvals...)
}

// Helper is the ergonomic front end callers reach for: pe.logger.Warnf(...),
// Debug(...), Errorf(...), exactly as used throughout the teacher.
type Helper struct {
	logger Logger
}

// NewHelper wraps logger in the Debug/Info/Warn/Error/Fatal convenience API.
func NewHelper(logger Logger) *Helper {
	return &Helper{logger: logger}
}

func (h *Helper) log(level Level, msg string) {
	if h == nil || h.logger == nil {
		return
	}
	_ = h.logger.Log(level, "msg", msg)
}

func (h *Helper) Debug(args ...interface{})                 { h.log(LevelDebug, fmt.Sprint(args...)) }
func (h *Helper) Debugf(format string, args ...interface{}) { h.log(LevelDebug, fmt.Sprintf(format, args...)) }
func (h *Helper) Info(args ...interface{})                  { h.log(LevelInfo, fmt.Sprint(args...)) }
func (h *Helper) Infof(format string, args ...interface{})  { h.log(LevelInfo, fmt.Sprintf(format, args...)) }
func (h *Helper) Warn(args ...interface{})                  { h.log(LevelWarn, fmt.Sprint(args...)) }
func (h *Helper) Warnf(format string, args ...interface{})  { h.log(LevelWarn, fmt.Sprintf(format, args...)) }
func (h *Helper) Error(args ...interface{})                 { h.log(LevelError, fmt.Sprint(args...)) }
func (h *Helper) Errorf(format string, args ...interface{}) { h.log(LevelError, fmt.Sprintf(format, args...)) }

func (h *Helper) Fatal(args ...interface{}) {
	h.log(LevelFatal, fmt.Sprint(args...))
	os.Exit(1)
}

func (h *Helper) Fatalf(format string, args ...interface{}) {
	h.log(LevelFatal, fmt.Sprintf(format, args...))
	os.Exit(1)
}
