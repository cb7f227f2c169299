package flat

import "testing"

func TestGraphemesAndWidth(t *testing.T) {
	s := From[[32]byte]("ae\u0301" + "\U0001F1EF\U0001F1F5")
	if got, want := s.Chars(), 5; got != want {
		t.Fatalf("chars: got %d, want %d", got, want)
	}
	if got, want := s.Graphemes(), 3; got != want {
		t.Fatalf("graphemes: got %d, want %d", got, want)
	}

	cjk := From[[16]byte]("こんに")
	if got, want := cjk.Width(), 6; got != want {
		t.Fatalf("width: got %d, want %d", got, want)
	}

	var empty String[[4]byte]
	if empty.Graphemes() != 0 || empty.Width() != 0 {
		t.Fatalf("empty string must measure zero")
	}
}
