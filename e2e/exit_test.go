//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestApplicationExit(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		send func(*TUITestFramework) error
	}{
		{"esc", (*TUITestFramework).PressEsc},
		{"ctrl+c", (*TUITestFramework).SendCtrlC},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			fw := newFakeWiki(t)
			tf := NewTUITest(t)
			defer tf.Cleanup()

			_, err := tf.CreateTestWorkspace()
			require.NoError(t, err, "Failed to create test workspace")

			err = tf.StartApp("--endpoint", fw.Endpoint(), "--log-file", "")
			require.NoError(t, err, "Failed to start app")
			require.True(t, tf.Ready(), "Should render the first frame")

			done := make(chan error, 1)
			go func() {
				done <- tf.cmd.Wait()
			}()

			require.NoError(t, tc.send(tf))

			select {
			case exitErr := <-done:
				require.NoError(t, exitErr, "Process should exit cleanly")
				tf.cmd = nil
			case <-time.After(3 * time.Second):
				t.Fatal("Application did not exit")
			}
		})
	}
}
