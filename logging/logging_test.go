package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWithWriterLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "cove", false)
	logger.Debug("hidden")
	logger.Warn("zone not validated", "markers", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "zone not validated")
	assert.Contains(t, out, "markers=3")
	assert.Contains(t, out, "cove")

	buf.Reset()
	NewWithWriter(&buf, "cove", true).Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}
