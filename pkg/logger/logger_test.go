package logger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestLogger(buf *bytes.Buffer, level string) *Logger {
	return New(Config{Level: level, Component: "facade", NoColor: true, Output: buf})
}

func TestLoggerWritesLogfmt(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(&buf, "info")

	log.Info("binding resolved", "binder", "zap")

	out := buf.String()
	assert.Contains(t, out, "level=info")
	assert.Contains(t, out, "msg=binding resolved")
	assert.Contains(t, out, "component=facade")
	assert.Contains(t, out, "binder=zap")
}

func TestLoggerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(&buf, "warn")

	log.Debug("hidden")
	log.Info("hidden")
	assert.Empty(t, buf.String())

	log.Warn("shown")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestLoggerInvalidLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(&buf, "loud")

	log.Debug("hidden")
	assert.Empty(t, buf.String())
	log.Info("shown")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestLoggerError(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(&buf, "info")

	log.Error("resolution failed", errors.New("boom"), "binder", "mdc")

	out := buf.String()
	assert.Contains(t, out, "level=error")
	assert.Contains(t, out, "boom")
	assert.Contains(t, out, "binder=mdc")
}

func TestLoggerUnpairedKeyValues(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(&buf, "info")

	log.Info("odd", "lonely")

	assert.Contains(t, buf.String(), "UNPAIRED_KEY_VALUE=")
}

func TestLoggerWith(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(&buf, "info").With("request_id", "r-1")

	log.Info("hello")

	assert.Contains(t, buf.String(), "request_id=r-1")
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() {
		Nop().Info("nothing")
		Nop().Error("nothing", errors.New("x"))
	})
}
