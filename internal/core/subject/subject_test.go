package subject

import "testing"

func TestNormalize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"Jordan Reeves", "Jordan Reeves"},
		{"  Jordan   Reeves  ", "Jordan Reeves"},
		{"Jordan\tReeves", "Jordan Reeves"},
		{"Jordan​Reeves", "JordanReeves"}, // zero width space is a format rune
		{"", ""},
		{"   ", ""},
		{"Ana", "Ana"},
	}

	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Fatalf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalize_StripsFormatRunes(t *testing.T) {
	t.Parallel()

	// U+200D zero width joiner is a Cf rune and must not survive
	if got := Normalize("Jo‍rdan"); got != "Jordan" {
		t.Fatalf("Normalize = %q, want %q", got, "Jordan")
	}
}

func TestNormalize_ComposesNFC(t *testing.T) {
	t.Parallel()

	// e + combining acute accent composes to a single rune
	decomposed := "José"
	if got := Normalize(decomposed); got != "José" {
		t.Fatalf("Normalize(%q) = %q, want %q", decomposed, got, "José")
	}
}
