package flat

import "testing"

func BenchmarkPushString_Partial(b *testing.B) {
	b.ReportAllocs()
	var s String[[32]byte]
	for i := 0; i < b.N; i++ {
		s.Clear()
		s.PushString("こんにちは世界, hello from a fixed buffer")
	}
}

func BenchmarkInsertRune_Saturated(b *testing.B) {
	b.ReportAllocs()
	s := From[[32]byte]("the quick brown fox jumps over")
	base := s
	for i := 0; i < b.N; i++ {
		s = base
		s.InsertRune(4, 'ん')
	}
}

func BenchmarkRemove_Front(b *testing.B) {
	b.ReportAllocs()
	base := From[[64]byte]("aんbcdefghijklmnopqrstuvwxyz")
	for i := 0; i < b.N; i++ {
		s := base
		s.Remove(0)
	}
}
