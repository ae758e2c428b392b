package tmuxobj_test

import (
	"testing"

	"github.com/abhinav/tmuxobj"
	"github.com/abhinav/tmuxobj/tmuxtest"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// listedPane builds a Pane by listing the given fixture line through the
// window's Panes call.
func listedPane(t *testing.T, line string) (*tmuxobj.Pane, *tmuxtest.MockDriver) {
	t.Helper()

	window, mockTmux := listedWindow(t, _windowLine)
	mockTmux.EXPECT().
		Exec("list-panes", "-t", "@1", "-F", gomock.Any()).
		Return(tmuxobj.Output{Stdout: []string{line}})

	panes, err := window.Panes()
	require.NoError(t, err)
	require.Len(t, panes, 1)
	return panes[0], mockTmux
}

func TestPaneFields(t *testing.T) {
	t.Parallel()

	pane, _ := listedPane(t, _paneLine)
	assert.Equal(t, "%1", pane.ID())

	idx, err := pane.Index()
	require.NoError(t, err)
	assert.Zero(t, idx)

	width, err := pane.Int("pane_width")
	require.NoError(t, err)
	assert.Equal(t, 80, width)

	dir, err := pane.Get("pane_current_path")
	require.NoError(t, err)
	assert.Equal(t, "/home/user", dir)
}

func TestPaneSendKeys(t *testing.T) {
	t.Parallel()

	t.Run("plain", func(t *testing.T) {
		t.Parallel()

		pane, mockTmux := listedPane(t, _paneLine)
		mockTmux.EXPECT().
			Exec("send-keys", "-t", "%1", "ls").
			Return(tmuxobj.Output{})

		assert.NoError(t, pane.SendKeys(tmuxobj.SendKeysRequest{Text: "ls"}))
	})

	t.Run("enter", func(t *testing.T) {
		t.Parallel()

		pane, mockTmux := listedPane(t, _paneLine)
		gomock.InOrder(
			mockTmux.EXPECT().
				Exec("send-keys", "-t", "%1", "-l", "make test").
				Return(tmuxobj.Output{}),
			mockTmux.EXPECT().
				Exec("send-keys", "-t", "%1", "Enter").
				Return(tmuxobj.Output{}),
		)

		assert.NoError(t, pane.SendKeys(tmuxobj.SendKeysRequest{
			Text:    "make test",
			Literal: true,
			Enter:   true,
		}))
	})

	t.Run("command failed", func(t *testing.T) {
		t.Parallel()

		pane, mockTmux := listedPane(t, _paneLine)
		mockTmux.EXPECT().
			Exec("send-keys", "-t", "%1", "ls").
			Return(tmuxobj.Output{Stderr: []string{"can't find pane: %1"}})

		err := pane.SendKeys(tmuxobj.SendKeysRequest{Text: "ls"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "can't find pane")
	})
}

func TestPaneCapture(t *testing.T) {
	t.Parallel()

	t.Run("visible", func(t *testing.T) {
		t.Parallel()

		pane, mockTmux := listedPane(t, _paneLine)
		mockTmux.EXPECT().
			Exec("capture-pane", "-p", "-t", "%1").
			Return(tmuxobj.Output{Stdout: []string{"$ ls", "main.go"}})

		lines, err := pane.Capture(tmuxobj.CapturePaneRequest{})
		require.NoError(t, err)
		assert.Equal(t, []string{"$ ls", "main.go"}, lines)
	})

	t.Run("history range", func(t *testing.T) {
		t.Parallel()

		pane, mockTmux := listedPane(t, _paneLine)
		mockTmux.EXPECT().
			Exec("capture-pane", "-p", "-t", "%1", "-S", "-10", "-E", "-1").
			Return(tmuxobj.Output{Stdout: []string{"old line"}})

		lines, err := pane.Capture(tmuxobj.CapturePaneRequest{
			StartLine: -10,
			EndLine:   -1,
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"old line"}, lines)
	})

	t.Run("command failed", func(t *testing.T) {
		t.Parallel()

		pane, mockTmux := listedPane(t, _paneLine)
		mockTmux.EXPECT().
			Exec("capture-pane", "-p", "-t", "%1").
			Return(tmuxobj.Output{Stderr: []string{"can't find pane: %1"}})

		_, err := pane.Capture(tmuxobj.CapturePaneRequest{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "can't find pane")
	})
}

func TestPaneSelect(t *testing.T) {
	t.Parallel()

	pane, mockTmux := listedPane(t, _paneLine)
	mockTmux.EXPECT().
		Exec("select-pane", "-t", "%1").
		Return(tmuxobj.Output{})

	assert.NoError(t, pane.Select())
}

func TestPaneKill(t *testing.T) {
	t.Parallel()

	pane, mockTmux := listedPane(t, _paneLine)
	mockTmux.EXPECT().
		Exec("kill-pane", "-t", "%1").
		Return(tmuxobj.Output{})

	assert.NoError(t, pane.Kill())
}

func TestPaneRefresh(t *testing.T) {
	t.Parallel()

	pane, mockTmux := listedPane(t, _paneLine)

	pane.Set("pane_width", "120")
	require.True(t, pane.Dirty())

	mockTmux.EXPECT().
		Exec("display-message", "-p", "-t", "%1", gomock.Any()).
		Return(tmuxobj.Output{Stdout: []string{
			"%1\t0\t1\t100\t50\tvim\t/home/user\t@1\tcopy-mode",
		}})

	require.NoError(t, pane.Refresh())
	assert.False(t, pane.Dirty(), "a refreshed pane starts clean")

	width, err := pane.Int("pane_width")
	require.NoError(t, err)
	assert.Equal(t, 100, width)

	mode, err := pane.Get("pane_mode")
	require.NoError(t, err)
	assert.Equal(t, "copy-mode", mode)
}
