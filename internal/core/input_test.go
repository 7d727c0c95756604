package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionFire) {
		t.Error("New frame should not have ActionFire")
	}
	if !f.Empty() {
		t.Error("New frame should be empty")
	}

	f.Set(ActionFire)
	f.Set(ActionUp)

	if !f.Has(ActionFire) {
		t.Error("Frame should have ActionFire after Set")
	}
	if !f.Has(ActionUp) {
		t.Error("Frame should have ActionUp after Set")
	}
	if f.Has(ActionDown) {
		t.Error("Frame should not have ActionDown")
	}
	if f.Empty() {
		t.Error("Frame with actions should not be empty")
	}

	f.Clear()
	if f.Has(ActionFire) || f.Has(ActionUp) {
		t.Error("Frame should be empty after Clear")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	// A zero-value frame must be safe to query and to set into.
	var f InputFrame

	if f.Has(ActionQuit) {
		t.Error("Zero frame should not have any action")
	}
	if !f.Empty() {
		t.Error("Zero frame should be empty")
	}

	f.Set(ActionQuit)
	if !f.Has(ActionQuit) {
		t.Error("Set on zero frame should work")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)

	clone := f.Clone()
	clone.Set(ActionRight)

	if f.Has(ActionRight) {
		t.Error("Mutating the clone should not affect the original")
	}
	if !clone.Has(ActionLeft) {
		t.Error("Clone should carry the original's actions")
	}
}

func TestMultiInputFramePerPlayer(t *testing.T) {
	m := NewMultiInputFrame()

	m.Press(Player1, ActionUp)
	m.Press(Player2, ActionFire)

	if !m.Player1().Has(ActionUp) {
		t.Error("Player 1 frame should have ActionUp")
	}
	if m.Player1().Has(ActionFire) {
		t.Error("Player 1 frame should not have Player 2's ActionFire")
	}
	if !m.Player2().Has(ActionFire) {
		t.Error("Player 2 frame should have ActionFire")
	}

	// Unknown player yields an empty frame, not a panic
	if !m.Player(PlayerNone).Empty() {
		t.Error("PlayerNone should have an empty frame")
	}

	m.Clear()
	if m.Player1().Has(ActionUp) || m.Player2().Has(ActionFire) {
		t.Error("Clear should empty all player frames")
	}
}

func TestMultiInputFrameZeroValue(t *testing.T) {
	var m MultiInputFrame

	if m.Player1().Has(ActionUp) {
		t.Error("Zero multi-frame should have no actions")
	}

	m.Press(Player1, ActionDown)
	if !m.Player1().Has(ActionDown) {
		t.Error("Press on zero multi-frame should work")
	}
}

func TestMultiInputFrameClone(t *testing.T) {
	m := NewMultiInputFrame()
	m.Press(Player1, ActionFire)

	clone := m.Clone()
	clone.Press(Player1, ActionUp)

	if m.Player1().Has(ActionUp) {
		t.Error("Mutating the clone should not affect the original")
	}
	if !clone.Player1().Has(ActionFire) {
		t.Error("Clone should carry the original's actions")
	}
}

func TestPlayerIDOpponent(t *testing.T) {
	if Player1.Opponent() != Player2 {
		t.Errorf("Player1.Opponent() = %v, expected Player2", Player1.Opponent())
	}
	if Player2.Opponent() != Player1 {
		t.Errorf("Player2.Opponent() = %v, expected Player1", Player2.Opponent())
	}
	if PlayerNone.Opponent() != PlayerNone {
		t.Errorf("PlayerNone.Opponent() = %v, expected PlayerNone", PlayerNone.Opponent())
	}
}

func TestPlayerIDString(t *testing.T) {
	if Player1.String() != "Player 1" {
		t.Errorf("Player1.String() = %q", Player1.String())
	}
	if Player2.String() != "Player 2" {
		t.Errorf("Player2.String() = %q", Player2.String())
	}
	if PlayerNone.String() != "nobody" {
		t.Errorf("PlayerNone.String() = %q", PlayerNone.String())
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionUp, "Up"},
		{ActionDown, "Down"},
		{ActionLeft, "Left"},
		{ActionRight, "Right"},
		{ActionFire, "Fire"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action.String() = %q, expected %q", got, tc.expected)
		}
	}
}
