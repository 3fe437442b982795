package domain

import "testing"

func TestParseAction(t *testing.T) {
	tests := []struct {
		input    string
		expected ActionType
	}{
		{"OPEN", ActionOpen},
		{"open", ActionOpen},
		{"Chord", ActionChord},
		{"FLAG", ActionFlag},
		{"cycle_flag", ActionCycleFlag},
		{"WAIT", ActionWait},
		{"MOVE", ActionUnknown},
		{"", ActionUnknown},
	}

	for _, tt := range tests {
		result := ParseAction(tt.input)
		if result != tt.expected {
			t.Errorf("ParseAction(%q) = %v, want %v", tt.input, result, tt.expected)
		}
	}
}

func TestActionType_String(t *testing.T) {
	tests := []struct {
		action   ActionType
		expected string
	}{
		{ActionOpen, "OPEN"},
		{ActionCycleFlag, "CYCLE_FLAG"},
		{ActionUnknown, "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.action.String(); got != tt.expected {
			t.Errorf("ActionType(%d).String() = %q, want %q", tt.action, got, tt.expected)
		}
	}
}

func TestParseBreed(t *testing.T) {
	tests := []struct {
		input string
		want  Breed
	}{
		{"wolf", BreedWolf},
		{"DRAGON", BreedDragon},
		{"hero", BreedHero},
		{"gloamling", BreedNone},
		{"goblin", BreedNone},
	}
	for _, tt := range tests {
		if got := ParseBreed(tt.input); got != tt.want {
			t.Errorf("ParseBreed(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
	if BreedNone != -1 || BreedHero != 0 || BreedDragon != 9 {
		t.Errorf("breed ids shifted: none=%d hero=%d dragon=%d", BreedNone, BreedHero, BreedDragon)
	}
}

func TestGameStatus(t *testing.T) {
	if StatusInProgress.IsOver() {
		t.Error("in-progress game reported as over")
	}
	if !StatusWon.IsOver() || !StatusLost.IsOver() {
		t.Error("terminal statuses must report IsOver")
	}
	if StatusLost.String() != "LOST" {
		t.Errorf("StatusLost.String() = %q", StatusLost.String())
	}
}
