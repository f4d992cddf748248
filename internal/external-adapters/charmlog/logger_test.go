package charmlog

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ochairo/prodverify/internal/domain/interfaces"
)

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, false)

	logger.Debug("hidden debug")
	logger.Info("Validation results:", interfaces.F("valid", 3))
	logger.Warn("careful")

	out := buf.String()
	assert.NotContains(t, out, "hidden debug")
	assert.Contains(t, out, "prodverify")
	assert.Contains(t, out, "Validation results:")
	assert.Contains(t, out, "valid=3")
	assert.Contains(t, out, "careful")
}

func TestLogger_VerboseShowsDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, true)

	logger.Debug("scan detail", interfaces.F("dir", "/d"))
	logger.Error("boom")

	out := buf.String()
	assert.Contains(t, out, "scan detail")
	assert.Contains(t, out, "dir=/d")
	assert.Contains(t, out, "boom")
}

func TestLogger_ImplementsInterface(t *testing.T) {
	var _ interfaces.Logger = New(&bytes.Buffer{}, false)
}
