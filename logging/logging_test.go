package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultLogger_RoutesLevels(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewDefaultLoggerWithWriters("learngl", false, &out, &errOut)

	l.Infof("window %dx%d", 1600, 900)
	l.Warnf("uniform %s does not exist", "missing")
	l.Errorf("link failed")

	assert.Contains(t, out.String(), "[learngl] INFO: window 1600x900")
	assert.Contains(t, errOut.String(), "[learngl] WARN: uniform missing does not exist")
	assert.Contains(t, errOut.String(), "[learngl] ERROR: link failed")
	assert.NotContains(t, out.String(), "WARN")
}

func TestDefaultLogger_DebugToggle(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewDefaultLoggerWithWriters("", false, &out, &errOut)

	l.Debugf("hidden")
	assert.Empty(t, out.String())

	l.SetDebug(true)
	assert.True(t, l.DebugEnabled())
	l.Debugf("shown %d", 1)
	assert.Contains(t, out.String(), "DEBUG: shown 1")
}

func TestOrNop(t *testing.T) {
	assert.NotNil(t, OrNop(nil))
	assert.False(t, OrNop(nil).DebugEnabled())

	l := NewDefaultLogger("x", true)
	assert.Same(t, l, OrNop(l))
}
