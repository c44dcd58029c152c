package kvexpr

import "testing"

func TestTranslateOperators(t *testing.T) {
	cases := []struct{ in, want string }{
		{"doğru", "true"},
		{"yanlış", "false"},
		{"a ve b", "a && b"},
		{"a veya b", "a || b"},
		{"değil a", "! a"},
		{"a küçüktür b", "a < b"},
		{"a büyüktür b", "a > b"},
		{"x y eşit", "x == y"},
		{"x y farklı", "x != y"},
	}
	for _, c := range cases {
		if got := TranslateOperators(c.in); got != c.want {
			t.Errorf("TranslateOperators(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestTranslateOperators_RelationalPhraseAppliesOnce(t *testing.T) {
	got := TranslateOperators("sayac 10 eşit ve bayrak doğru")
	want := "sayac == 10 && bayrak true"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
