package gl

import (
	"fmt"
	"slices"
	"strings"
)

// EnumVariant is one named value of an enumeration or bitflag type.
type EnumVariant struct {
	Name  string
	Value uint32
}

// EnumDescriptor describes one enumeration or bitflag type of this package.
type EnumDescriptor struct {
	Name     string
	Bitflag  bool
	Variants []EnumVariant
}

// Lookup returns the variant with value v.
func (d EnumDescriptor) Lookup(v uint32) (EnumVariant, bool) {
	for _, variant := range d.Variants {
		if variant.Value == v {
			return variant, true
		}
	}
	return EnumVariant{}, false
}

// Decompose splits v into the named bits of a bitflag type. The second
// result holds the bits with no name.
func (d EnumDescriptor) Decompose(v uint32) ([]EnumVariant, uint32) {
	var set []EnumVariant
	for _, variant := range d.Variants {
		if variant.Value != 0 && v&variant.Value == variant.Value {
			set = append(set, variant)
			v &^= variant.Value
		}
	}
	return set, v
}

var catalog []EnumDescriptor

// EnumCatalog describes every enumeration and bitflag type, sorted by name.
func EnumCatalog() []EnumDescriptor {
	out := slices.Clone(catalog)
	slices.SortFunc(out, func(a, b EnumDescriptor) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

// LookupEnum returns the descriptor of the type called name.
func LookupEnum(name string) (EnumDescriptor, bool) {
	for _, d := range catalog {
		if strings.EqualFold(d.Name, name) {
			return d, true
		}
	}
	return EnumDescriptor{}, false
}

type variant[T ~uint32] struct {
	value T
	name  string
}

// enum is the closed variant list of one enumeration type.
type enum[T ~uint32] struct {
	typ    string
	values []T
	names  map[T]string
}

func newEnum[T ~uint32](typ string, variants ...variant[T]) *enum[T] {
	e := &enum[T]{typ: typ, names: make(map[T]string, len(variants))}
	d := EnumDescriptor{Name: typ}
	for _, v := range variants {
		e.values = append(e.values, v.value)
		e.names[v.value] = v.name
		d.Variants = append(d.Variants, EnumVariant{Name: v.name, Value: uint32(v.value)})
	}
	catalog = append(catalog, d)
	return e
}

func (e *enum[T]) name(v T) string {
	if n, ok := e.names[v]; ok {
		return n
	}
	return fmt.Sprintf("%s(%#x)", e.typ, uint32(v))
}

func (e *enum[T]) fromGL(v uint32) (T, error) {
	if _, ok := e.names[T(v)]; ok {
		return T(v), nil
	}
	return 0, conversionFailure(e.typ, int64(v))
}

func (e *enum[T]) all() []T {
	return slices.Clone(e.values)
}

// flags is the set of named bits of one bitflag type.
type flags[T ~uint32] struct {
	typ  string
	bits []variant[T]
	mask T
}

func newFlags[T ~uint32](typ string, bits ...variant[T]) *flags[T] {
	f := &flags[T]{typ: typ, bits: bits}
	d := EnumDescriptor{Name: typ, Bitflag: true}
	for _, b := range bits {
		f.mask |= b.value
		d.Variants = append(d.Variants, EnumVariant{Name: b.name, Value: uint32(b.value)})
	}
	catalog = append(catalog, d)
	return f
}

func (f *flags[T]) fromBits(b uint32) (T, bool) {
	if b&^uint32(f.mask) != 0 {
		return 0, false
	}
	return T(b), true
}

func (f *flags[T]) format(v T) string {
	if v == 0 {
		return f.typ + "(0)"
	}
	var parts []string
	for _, b := range f.bits {
		if v&b.value != 0 {
			parts = append(parts, b.name)
			v &^= b.value
		}
	}
	if v != 0 {
		parts = append(parts, fmt.Sprintf("%#x", uint32(v)))
	}
	return strings.Join(parts, "|")
}

func conversionFailure(typ string, v int64) *Error {
	return &Error{Kind: KindConversionFailure, Name: typ, Value: v}
}
