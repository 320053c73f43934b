//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLiveFilter(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	err = tf.StartApp("alpha-project", "beta-project", "gamma")
	require.NoError(t, err, "Failed to start app")
	require.True(t, tf.Ready(), "Should render the list")

	tf.SendKeys(KeyFilter)
	require.True(t, tf.SeePlain("Filter:"), "Filter prompt should appear")

	tf.Type("be")
	if !tf.SeePlain("[Filter: be, 1 shown]") {
		tf.DumpTailOnFail(t, "filter", 4096)
		t.Fatal("filter status not shown")
	}

	tf.SendEnter()
	tf.SendKeys(KeyCtrlA)
	require.True(t, tf.SeePlain("1/3 selected"), "select all covers the filtered items")

	mark := tf.Mark()
	tf.SendEnter()
	_, exited := tf.WaitExit(2 * time.Second)
	require.True(t, exited, "app should exit on enter")
	require.True(t, tf.SeePlainAfter(mark, "beta-project\n"))
}

func TestFilterNoMatches(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	err = tf.StartApp("alpha", "beta")
	require.NoError(t, err, "Failed to start app")
	require.True(t, tf.Ready(), "Should render the list")

	tf.SendKeys(KeyFilter)
	tf.Type("zzz")
	require.True(t, tf.SeePlain("No items match the filter."))

	mark := tf.Mark()
	tf.SendKeys(KeyEsc)
	require.True(t, tf.SeePlainAfter(mark, "alpha"), "leaving the filter shows every item again")
}
