package flat

import (
	"reflect"
	"sync"
	"unsafe"
)

// MaxCap is the largest capacity a String can have.
const MaxCap = 255

// checkedStorage caches storage types that passed mustStorage.
var checkedStorage sync.Map // reflect.Type -> struct{}

// mustStorage panics unless A is a byte array of length 1..MaxCap. The
// result is cached per type, so only the first call reflects.
func mustStorage[A any]() {
	t := reflect.TypeFor[A]()
	if _, ok := checkedStorage.Load(t); ok {
		return
	}
	if t.Kind() != reflect.Array || t.Elem().Kind() != reflect.Uint8 {
		failf("storage type %s is not a byte array", t)
	}
	if n := t.Len(); n < 1 || n > MaxCap {
		failf("capacity %d out of range [1, %d]", n, MaxCap)
	}
	checkedStorage.Store(t, struct{}{})
}

// buf returns the whole storage array as a slice. It aliases s.data.
func (s *String[A]) buf() []byte {
	mustStorage[A]()
	return unsafe.Slice((*byte)(unsafe.Pointer(&s.data)), unsafe.Sizeof(s.data))
}

// bytesToString converts b without copying. The result must not outlive b
// and b must not change while the result is in use.
func bytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// overlaps reports whether text shares memory with b.
func overlaps(b []byte, text string) bool {
	if len(b) == 0 || len(text) == 0 {
		return false
	}
	b0 := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	t0 := uintptr(unsafe.Pointer(unsafe.StringData(text)))
	return t0 < b0+uintptr(len(b)) && b0 < t0+uintptr(len(text))
}
