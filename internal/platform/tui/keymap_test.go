package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		expected core.Action
		quit     bool
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{keyMsg("h"), core.ActionLeft, false},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{keyMsg("l"), core.ActionRight, false},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionSoftDrop, false},
		{keyMsg("j"), core.ActionSoftDrop, false},
		{keyMsg(" "), core.ActionHardDrop, false},
		{keyMsg("x"), core.ActionRotateCW, false},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionRotateCW, false},
		{keyMsg("z"), core.ActionRotateCCW, false},
		{keyMsg("c"), core.ActionHold, false},
		{tea.KeyMsg{Type: tea.KeyTab}, core.ActionHold, false},
		{keyMsg("p"), core.ActionPause, false},
		{keyMsg("esc"), core.ActionPause, false},
		{keyMsg("r"), core.ActionRestart, false},
		{keyMsg("q"), core.ActionQuit, true},
		{keyMsg("ctrl+c"), core.ActionQuit, true},
		{keyMsg("y"), core.ActionNone, false},
	}

	for _, tt := range tests {
		action, quit := km.MapKey(tt.msg)
		if action != tt.expected || quit != tt.quit {
			t.Errorf("MapKey(%q) = %v, %v, expected %v, %v", tt.msg.String(), action, quit, tt.expected, tt.quit)
		}
	}
}

func TestMapKeyToFrameKeepsOrder(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(keyMsg("h"), &frame)
	km.MapKeyToFrame(keyMsg("x"), &frame)
	km.MapKeyToFrame(keyMsg("h"), &frame)
	if quit := km.MapKeyToFrame(keyMsg("q"), &frame); !quit {
		t.Error("q should request quit")
	}

	seq := frame.Sequence()
	expected := []core.Action{core.ActionLeft, core.ActionRotateCW, core.ActionLeft}
	if len(seq) != len(expected) {
		t.Fatalf("Sequence() = %v, expected %v", seq, expected)
	}
	for i := range expected {
		if seq[i] != expected[i] {
			t.Errorf("Sequence()[%d] = %v, expected %v", i, seq[i], expected[i])
		}
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.DrawTextColor(2, 0, "cd", core.ColorRed)

	out := RenderScreen(s)

	if got := stripANSI(out); got != "abcd  \n      " {
		t.Errorf("RenderScreen() text = %q", got)
	}
}

// stripANSI removes CSI escape sequences.
func stripANSI(s string) string {
	var out []rune
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
		default:
			out = append(out, r)
		}
	}
	return string(out)
}
