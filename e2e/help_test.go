//go:build e2e && unix

package main

import (
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHelpFlag(t *testing.T) {
	t.Parallel()

	if _, err := os.Stat(binPath); os.IsNotExist(err) {
		t.Skip("Test binary not found - TestMain may not have run yet")
	}

	// runs outside the PTY since it exits immediately
	out, err := exec.Command(binPath, "--help").CombinedOutput()
	require.NoError(t, err, "Help flag should exit cleanly")

	output := string(out)
	require.Contains(t, output, "Usage")
	require.Contains(t, output, "-ids")
	require.Contains(t, output, "-file")
}

func TestHelpPager(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	err = tf.StartApp("alpha", "beta")
	require.NoError(t, err, "Failed to start app")
	require.True(t, tf.Ready(), "Should render the list")

	tf.SendKeys(KeyHelp)
	if !tf.OutputContainsPlain("listgrip Help", 3*time.Second) {
		tf.DumpTailOnFail(t, "help-pager", 4096)
		t.Fatal("help pager did not open")
	}

	mark := tf.Mark()
	tf.PressQuit()
	require.True(t, tf.SeePlainAfter(mark, "selected"), "closing the pager should return to the list")

	tf.Quit()
	_, exited := tf.WaitExit(2 * time.Second)
	require.True(t, exited)
}
