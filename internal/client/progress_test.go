package client

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressManager_Disabled(t *testing.T) {
	pm := NewProgressManager(ProgressConfig{Enabled: false})
	bar := pm.CreateBar(3, "Transcribing")

	bar.Progress()(1, 3, 33.3)
	bar.Abort()
	pm.Wait()
	assert.False(t, bar.enabled)
}

func TestProgressManager_Completes(t *testing.T) {
	var out bytes.Buffer
	pm := NewProgressManager(ProgressConfig{Enabled: true, Writer: &out})
	bar := pm.CreateBar(2, "Transcribing")

	progress := bar.Progress()
	progress(1, 2, 50)
	progress(2, 2, 100)
	pm.Wait()

	assert.Contains(t, out.String(), "Transcribing")
}

func TestProgressManager_Abort(t *testing.T) {
	var out bytes.Buffer
	pm := NewProgressManager(ProgressConfig{Enabled: true, Writer: &out})
	bar := pm.CreateBar(3, "Transcribing")

	bar.SetCurrent(1)
	bar.Abort()
	pm.Wait()

	assert.Contains(t, out.String(), "Transcribing")
}

func TestIsTTY(t *testing.T) {
	assert.False(t, IsTTY(nil))
	assert.False(t, IsTTY(&bytes.Buffer{}))
	assert.True(t, ShouldShowProgress(true))
}
