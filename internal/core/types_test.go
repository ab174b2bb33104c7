package core

import "testing"

func TestTagIsTable(t *testing.T) {
	tests := []struct {
		tag  Tag
		want bool
	}{
		{TagRectTable, true},
		{TagRoundTable, true},
		{TagWall, false},
		{TagSofa, false},
		{TagSingleSofa, false},
		{TagDJBooth, false},
		{TagStage, false},
		{TagBar, false},
	}

	for _, tt := range tests {
		got := tt.tag.IsTable()
		if got != tt.want {
			t.Errorf("%v.IsTable() = %v, want %v", tt.tag, got, tt.want)
		}
	}
}

func TestParseTag(t *testing.T) {
	for _, tag := range AllTags() {
		got, err := ParseTag(string(tag))
		if err != nil || got != tag {
			t.Errorf("ParseTag(%q) = %v, %v", tag, got, err)
		}
	}

	if _, err := ParseTag("piano"); err == nil {
		t.Errorf("ParseTag should reject unknown tags")
	}
}

func TestNewElementIDUnique(t *testing.T) {
	seen := make(map[ElementID]bool)
	for i := 0; i < 100; i++ {
		id := NewElementID()
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}
