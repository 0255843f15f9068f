package gl

import (
	"math"
	"strings"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Bytes reinterprets a slice of plain values as its underlying bytes, for
// uploading with BufferData and friends. T must not contain Go pointers.
func Bytes[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*int(unsafe.Sizeof(s[0])))
}

// generated is the handle types that come in batches from glGen*/glCreate*.
type generated interface {
	Buffer | Framebuffer | Renderbuffer | Texture | VertexArray
}

// names points at the uint32 names of handles, or nil when empty.
func names[H generated](handles []H) *uint32 {
	if len(handles) == 0 {
		return nil
	}
	return (*uint32)(unsafe.Pointer(&handles[0]))
}

func pointer[T any](s []T) unsafe.Pointer {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Pointer(&s[0])
}

// first points at the first element, or nil when empty.
func first[T any](s []T) *T {
	if len(s) == 0 {
		return nil
	}
	return &s[0]
}

// sizei converts the length arg of op to a GLsizei. Lengths a GLsizei
// cannot hold are reported as InvalidValue without calling OpenGL.
func sizei[T constraints.Integer](op, arg string, n T) (int32, *Error) {
	v := int32(n)
	if v < 0 || T(v) != n {
		return 0, &Error{Op: op, Kind: KindLengthOverflow, Code: InvalidValue, Name: arg, Value: int64(n)}
	}
	return v, nil
}

// bufSize is the capacity of buf as the bufSize of a query that writes at
// most that many bytes.
func bufSize(buf []byte) int32 {
	if len(buf) > math.MaxInt32 {
		return math.MaxInt32
	}
	return int32(len(buf))
}

// cstring returns s as a NUL-terminated byte slice.
func cstring(s string) []byte {
	if strings.HasSuffix(s, "\x00") {
		return []byte(s)
	}
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b
}

// glBool checks a GLboolean read back through an integer query.
func glBool(v int64) (bool, bool) {
	switch v {
	case 0:
		return false, true
	case 1:
		return true, true
	}
	return false, false
}
