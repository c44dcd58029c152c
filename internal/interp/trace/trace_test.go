package trace

import (
	"strings"
	"testing"
)

func TestNew_SeedsMainFrame(t *testing.T) {
	s := New()
	if s.Depth() != 1 {
		t.Fatalf("Depth() = %d, want 1", s.Depth())
	}
	if s.Entries()[0].Name != "<main>" {
		t.Errorf("Entries()[0].Name = %q, want <main>", s.Entries()[0].Name)
	}
}

func TestPushPop_TracksCallDepth(t *testing.T) {
	s := New()
	s.Push("topla")
	if s.Depth() != 2 {
		t.Fatalf("Depth() after Push = %d, want 2", s.Depth())
	}
	s.Pop()
	if s.Depth() != 1 {
		t.Fatalf("Depth() after Pop = %d, want 1", s.Depth())
	}
}

func TestPop_OnSingleEntryIsNoOp(t *testing.T) {
	s := New()
	s.Pop()
	if s.Depth() != 1 {
		t.Error("Pop() should not drop below the seeded <main> entry")
	}
}

func TestSetLine_UpdatesTopEntryOnly(t *testing.T) {
	s := New()
	s.SetLine(3)
	s.Push("kare")
	s.SetLine(7)

	entries := s.Entries()
	if entries[0].Line != 3 {
		t.Errorf("outer entry line = %d, want 3", entries[0].Line)
	}
	if entries[1].Line != 7 {
		t.Errorf("inner entry line = %d, want 7", entries[1].Line)
	}
}

func TestString_MostRecentCallFirst(t *testing.T) {
	s := New()
	s.SetLine(1)
	s.Push("kare")
	s.SetLine(5)

	out := s.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("String() produced %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "kare") {
		t.Errorf("first line should be the most recent call, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "<main>") {
		t.Errorf("second line should be <main>, got %q", lines[1])
	}
}
