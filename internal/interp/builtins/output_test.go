package builtins

import "testing"

func TestColorize_KnownAndUnknownNames(t *testing.T) {
	out := Colorize("merhaba", "kırmızı")
	if out == "merhaba" {
		t.Error("Colorize with a known color name should wrap the text in ANSI codes")
	}

	out = Colorize("merhaba", "hayali-renk")
	if out != "merhaba" {
		t.Errorf("Colorize with an unknown name should return the text unchanged, got %q", out)
	}
}

func TestTriangle(t *testing.T) {
	want := "*\n**\n***\n"
	if got := Triangle(3); got != want {
		t.Errorf("Triangle(3) = %q, want %q", got, want)
	}
}

func TestSquare(t *testing.T) {
	want := "**\n**\n"
	if got := Square(2); got != want {
		t.Errorf("Square(2) = %q, want %q", got, want)
	}
}

func TestHeart_FixedShape(t *testing.T) {
	got := Heart()
	if got == "" {
		t.Fatal("Heart() should not be empty")
	}
	if got[len(got)-1] != '\n' {
		t.Error("Heart() should end with a newline")
	}
}

func TestGraph(t *testing.T) {
	got := Graph([]float64{3, 0})
	want := "1: ### 3\n2:  0\n"
	if got != want {
		t.Errorf("Graph([3,0]) = %q, want %q", got, want)
	}
}
