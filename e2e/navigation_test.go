//go:build e2e && unix

package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// In the 120x40 test terminal with one visible card and the default 32px
// peek, the card spans columns 9-110 on rows 3-10 and the next button sits
// at column 115.
const (
	cardRow = 6
	cardX   = 60
	nextX   = 115
)

func startDeck(t *testing.T, options ...ConfigOption) *TUITestFramework {
	t.Helper()
	tf := NewTUITest(t)
	t.Cleanup(tf.Cleanup)

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")
	_, err = tf.WriteConfig(options...)
	require.NoError(t, err, "Failed to write config")

	require.NoError(t, tf.StartApp("-log", "/dev/null"), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("E2E Deck"), "Should show the configured title")
	require.True(t, tf.SeePlain("carousel item 1 of 5"), "Should show the first card")
	return tf
}

func TestKeyboardNavigation(t *testing.T) {
	t.Parallel()
	tf := startDeck(t)

	mark := tf.Mark()
	tf.Right()
	require.True(t, tf.SeePlainSince(mark, "carousel item 2 of 5"), "Right should show the next card")

	mark = tf.Mark()
	tf.Left()
	require.True(t, tf.SeePlainSince(mark, "carousel item 1 of 5"), "Left should go back")
}

func TestKeyboardNavigationClampsAtEnds(t *testing.T) {
	t.Parallel()
	tf := startDeck(t)

	mark := tf.Mark()
	tf.SendKeys("G")
	require.True(t, tf.SeePlainSince(mark, "page 5/5"), "G should go to the last page")

	mark = tf.Mark()
	tf.Right()
	tf.SendKeys("g")
	time.Sleep(50 * time.Millisecond)
	tf.SendKeys("g")
	require.True(t, tf.SeePlainSince(mark, "page 1/5"), "gg should go to the first page")
}

func TestWraparound(t *testing.T) {
	t.Parallel()
	tf := startDeck(t, WithInfinite())

	mark := tf.Mark()
	tf.Left()
	require.True(t, tf.SeePlainSince(mark, "carousel item 5 of 5"), "Left from the start should wrap to the end")
}

func TestDragSwipes(t *testing.T) {
	t.Parallel()
	tf := startDeck(t)

	mark := tf.Mark()
	require.NoError(t, tf.Drag(cardX, cardX-20, cardRow))
	require.True(t, tf.SeePlainSince(mark, "carousel item 2 of 5"), "Dragging left should advance")

	mark = tf.Mark()
	require.NoError(t, tf.Drag(cardX, cardX+20, cardRow))
	require.True(t, tf.SeePlainSince(mark, "carousel item 1 of 5"), "Dragging right should go back")
}

func TestNextButton(t *testing.T) {
	t.Parallel()
	tf := startDeck(t)

	mark := tf.Mark()
	require.NoError(t, tf.Click(nextX, cardRow))
	require.True(t, tf.SeePlainSince(mark, "page 2/5"), "Next button should advance")
}

func TestClickOpensDetails(t *testing.T) {
	t.Parallel()
	tf := startDeck(t)

	mark := tf.Mark()
	require.NoError(t, tf.Click(cardX, cardRow))
	require.True(t, tf.SeePlainSince(mark, "esc to close"), "Click should open the details popup")
	require.True(t, tf.SeePlainSince(mark, "Card number 1"), "Popup should describe the card")

	mark = tf.Mark()
	tf.Escape()
	require.True(t, tf.SeePlainSince(mark, "page 1/5"), "Esc should return to the slider")
}

func TestJumpToItem(t *testing.T) {
	t.Parallel()
	tf := startDeck(t)

	mark := tf.Mark()
	tf.SendKeys(KeyJump)
	require.True(t, tf.SeePlainSince(mark, "Go to item:"), "Should prompt for an item")

	mark = tf.Mark()
	tf.SendKeys("4")
	tf.SendEnter()
	require.True(t, tf.SeePlainSince(mark, "Jumped to item 4"), "Should confirm the jump")
	require.True(t, tf.SeePlainSince(mark, "carousel item 4 of 5"), "Should show the fourth card")
}

func TestAutoPlayAdvances(t *testing.T) {
	t.Parallel()
	tf := startDeck(t, WithAutoPlay(300))

	require.True(t, tf.SeePlainSince(0, "page 2/5"), "Auto-play should advance without input")

	mark := tf.Mark()
	tf.SendKeys(KeyAutoPlay)
	require.True(t, tf.SeePlainSince(mark, "Auto-play off"), "p should stop auto-play")
}
