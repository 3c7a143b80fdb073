package tracekit

import (
	"sync"

	"go.uber.org/zap"
)

// Package-level logger. Silent by default; SetVerbose or SetLogger turns
// diagnostics on. Resolution failures log at warning level, progress at
// info level.
var (
	loggerMu sync.RWMutex
	pkgLog   = zap.NewNop()
)

// SetLogger replaces the package logger. Passing nil restores the no-op
// logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggerMu.Lock()
	pkgLog = l
	loggerMu.Unlock()
}

// SetVerbose switches between a development logger and the silent
// default.
func SetVerbose(on bool) {
	if !on {
		SetLogger(nil)
		return
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return
	}
	SetLogger(l)
}

func logger() *zap.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return pkgLog
}

// Progress reports the advance of a multi-record operation through the
// package logger.
type Progress struct {
	label string
	total int
	done  int
}

// NewProgress starts a progress report for total steps under the given
// label.
func NewProgress(label string, total int) *Progress {
	p := &Progress{label: label, total: total}
	if total > 0 {
		logger().Info(label, zap.Int("total", total))
	}
	return p
}

// Step records one completed step.
func (p *Progress) Step(name string) {
	p.done++
	logger().Info(p.label,
		zap.Int("done", p.done),
		zap.Int("total", p.total),
		zap.String("name", name),
	)
}

// Done closes the report.
func (p *Progress) Done() {
	logger().Info(p.label+" finished",
		zap.Int("done", p.done),
		zap.Int("total", p.total),
	)
}
