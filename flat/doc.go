// Package flat implements String, a fixed-capacity UTF-8 string stored inline.
//
// A String[A] keeps its bytes in the array A, so it never allocates and copies
// by plain assignment. Capacity is len(A), between 1 and 255 bytes.
//
// Content is always valid UTF-8. When text does not fit, whole characters are
// dropped from the end of what was being added; a character is never split.
// Byte indices passed to Truncate, Insert and Remove must lie on a character
// boundary, otherwise the call panics.
package flat
