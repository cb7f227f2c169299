package flat

import "testing"

func TestInsert_OverflowDropsTailOfInsertedText(t *testing.T) {
	s := From[[10]byte]("abcde")
	s.Insert(2, "0123456789")
	assertContent(t, &s, "ab01234567", 10, 10)
}

func TestInsertRune_SaturatingDropsSuffixChars(t *testing.T) {
	s := From[[6]byte]("Hello")
	s.InsertRune(5, '!')
	assertContent(t, &s, "Hello!", 6, 6)

	s.Set("HEello")
	s.InsertRune(1, 'ん')
	assertContent(t, &s, "HんEe", 6, 4)
}

func TestInsert_WithinCapacity(t *testing.T) {
	cases := []struct {
		name  string
		start string
		at    int
		text  string
		want  string
	}{
		{name: "front", start: "world", at: 0, text: "hello ", want: "hello world"},
		{name: "middle", start: "held", at: 2, text: "llo wor", want: "hello world"},
		{name: "end", start: "hello", at: 5, text: " world", want: "hello world"},
		{name: "multibyte neighbours", start: "aんb", at: 4, text: "ö", want: "aんöb"},
		{name: "empty text", start: "abc", at: 1, text: "", want: "abc"},
	}

	for _, tc := range cases {
		s := From[[16]byte](tc.start)
		s.Insert(tc.at, tc.text)
		if got := s.String(); got != tc.want {
			t.Fatalf("%s: got %q, want %q", tc.name, got, tc.want)
		}
		if got, want := s.Chars(), len([]rune(tc.want)); got != want {
			t.Fatalf("%s: chars got %d, want %d", tc.name, got, want)
		}
	}
}

func TestInsert_Saturating(t *testing.T) {
	cases := []struct {
		name      string
		start     string
		at        int
		text      string
		want      string
		wantChars int
	}{
		{name: "suffix fits exactly", start: "aんb", at: 1, text: "xyz", want: "axyzんb", wantChars: 6},
		{name: "suffix loses last char", start: "aんb", at: 1, text: "xyzw", want: "axyzwん", wantChars: 6},
		{name: "suffix multibyte dropped whole", start: "aんb", at: 1, text: "xyzwv", want: "axyzwv", wantChars: 6},
		{name: "text fills to capacity", start: "abcdefgh", at: 4, text: "XYZW", want: "abcdXYZW", wantChars: 8},
		{name: "text partially kept", start: "abc", at: 1, text: "んんん", want: "aんんb", wantChars: 4},
	}

	for _, tc := range cases {
		s := From[[8]byte](tc.start)
		s.Insert(tc.at, tc.text)
		if got := s.String(); got != tc.want {
			t.Fatalf("%s: got %q, want %q", tc.name, got, tc.want)
		}
		if got := s.Chars(); got != tc.wantChars {
			t.Fatalf("%s: chars got %d, want %d", tc.name, got, tc.wantChars)
		}
		if s.Len() > s.Cap() {
			t.Fatalf("%s: len %d exceeds cap %d", tc.name, s.Len(), s.Cap())
		}
	}
}

func TestInsert_TextThatCannotFitLeavesStringUnchanged(t *testing.T) {
	s := From[[6]byte]("Hello!")
	s.InsertRune(4, 'ん')
	assertContent(t, &s, "Hello!", 6, 6)

	s2 := From[[4]byte]("abcd")
	s2.Insert(1, "ん")
	assertContent(t, &s2, "aん", 4, 2)
}

func TestInsert_PanicsOnBadIndex(t *testing.T) {
	s := From[[8]byte]("aんb")
	mustPanic(t, "inside rune", func() { s.Insert(2, "x") })
	mustPanic(t, "past end", func() { s.Insert(6, "x") })
	mustPanic(t, "negative", func() { s.InsertRune(-1, 'x') })
	assertContent(t, &s, "aんb", 5, 3)
}

func TestInsert_TextViewOfItself(t *testing.T) {
	s := From[[10]byte]("abcd")
	s.Insert(0, s.UnsafeString()[2:4])
	assertContent(t, &s, "cdabcd", 6, 6)

	s.Insert(6, s.UnsafeString())
	assertContent(t, &s, "cdabcdcdab", 10, 10)

	full := From[[8]byte]("aんbc")
	full.Insert(1, full.UnsafeString()[1:4])
	assertContent(t, &full, "aんんb", 8, 4)
}
