package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame // zero value must be usable
	if f.Has(ActionJump) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionJump)
	f.Set(ActionMute)
	if !f.Has(ActionJump) || !f.Has(ActionMute) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Empty() {
		t.Error("frame with actions should not be empty")
	}

	f.Clear()
	if !f.Empty() {
		t.Error("Clear should remove all actions")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:    "None",
		ActionJump:    "Jump",
		ActionRestart: "Restart",
		ActionMute:    "Mute",
		ActionQuit:    "Quit",
		Action(99):    "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", int(a), got, want)
		}
	}
}
