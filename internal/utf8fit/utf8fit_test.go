package utf8fit

import "testing"

func TestFit(t *testing.T) {
	cases := []struct {
		name      string
		text      string
		room      int
		wantBytes int
		wantChars int
	}{
		{name: "empty", text: "", room: 4, wantBytes: 0, wantChars: 0},
		{name: "no room", text: "abc", room: 0, wantBytes: 0, wantChars: 0},
		{name: "negative room", text: "abc", room: -3, wantBytes: 0, wantChars: 0},
		{name: "whole", text: "abc", room: 3, wantBytes: 3, wantChars: 3},
		{name: "ascii prefix", text: "Hello world", room: 5, wantBytes: 5, wantChars: 5},
		{name: "single char at boundary", text: "xyz", room: 1, wantBytes: 1, wantChars: 1},
		{name: "cjk", text: "こんにちは", room: 10, wantBytes: 9, wantChars: 3},
		{name: "multibyte does not fit", text: "ん", room: 2, wantBytes: 0, wantChars: 0},
		{name: "mixed", text: "aんb", room: 3, wantBytes: 1, wantChars: 1},
		{name: "mixed exact", text: "aんb", room: 4, wantBytes: 4, wantChars: 2},
		{name: "emoji", text: "😀😀", room: 7, wantBytes: 4, wantChars: 1},
	}

	for _, tc := range cases {
		gotBytes, gotChars := Fit(tc.text, tc.room)
		if gotBytes != tc.wantBytes || gotChars != tc.wantChars {
			t.Fatalf("%s: Fit(%q, %d): got (%d, %d), want (%d, %d)",
				tc.name, tc.text, tc.room, gotBytes, gotChars, tc.wantBytes, tc.wantChars)
		}

		gotBytes, gotChars = FitBytes([]byte(tc.text), tc.room)
		if gotBytes != tc.wantBytes || gotChars != tc.wantChars {
			t.Fatalf("%s: FitBytes(%q, %d): got (%d, %d), want (%d, %d)",
				tc.name, tc.text, tc.room, gotBytes, gotChars, tc.wantBytes, tc.wantChars)
		}
	}
}

func TestSanitize(t *testing.T) {
	if got, want := Sanitize("héllo"), "héllo"; got != want {
		t.Fatalf("valid input: got %q, want %q", got, want)
	}
	if got, want := Sanitize("a\xffb"), "a�b"; got != want {
		t.Fatalf("invalid byte: got %q, want %q", got, want)
	}
	if got, want := Sanitize("a\xff\xfeb"), "a�b"; got != want {
		t.Fatalf("invalid run collapses: got %q, want %q", got, want)
	}
	// A truncated three-byte sequence.
	if got, want := Sanitize("ab\xe3\x81"), "ab�"; got != want {
		t.Fatalf("truncated sequence: got %q, want %q", got, want)
	}

	in := []byte("plain")
	if got := SanitizeBytes(in); &got[0] != &in[0] {
		t.Fatalf("valid bytes must be returned without copying")
	}
	if got, want := string(SanitizeBytes([]byte("x\x80"))), "x�"; got != want {
		t.Fatalf("invalid bytes: got %q, want %q", got, want)
	}
}
