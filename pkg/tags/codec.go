package tags

import (
	"encoding/json"
	"fmt"
)

// Codec defines how one typed value becomes one raw string and back.
//
// Encode is total: it must succeed for any well-formed T. A codec author who
// cannot guarantee that must not register the codec for that type. Decode is
// partial and reports a typed error for any input that does not correspond
// to a valid T.
type Codec[T any] interface {
	Encode(T) RawTagValue
	Decode(RawTagValue) (T, error)
}

// JSON returns the structured codec for T: values are encoded as compact
// JSON text. Use it for types with multiple fields or nested shape; for
// primitive-like types prefer a manual codec, since the wire format has no
// native quoting and JSON would quote strings.
func JSON[T any]() Codec[T] {
	return jsonCodec[T]{}
}

type jsonCodec[T any] struct{}

func (jsonCodec[T]) Encode(v T) RawTagValue {
	data, err := json.Marshal(v)
	if err != nil {
		// An unencodable value under a structured codec is a
		// programming-contract violation, not a recoverable error.
		panic(fmt.Sprintf("tags: JSON encode of %T failed: %v", v, err))
	}
	return RawTagValue(data)
}

func (jsonCodec[T]) Decode(raw RawTagValue) (T, error) {
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return v, &ValueError{Value: raw, Message: err.Error()}
	}
	return v, nil
}

// Manual builds a codec from hand-written conversions. decode must return a
// *ValueError (or another typed error from this package) for inputs that do
// not round-trip to a valid T.
func Manual[T any](encode func(T) RawTagValue, decode func(RawTagValue) (T, error)) Codec[T] {
	return manualCodec[T]{encode: encode, decode: decode}
}

type manualCodec[T any] struct {
	encode func(T) RawTagValue
	decode func(RawTagValue) (T, error)
}

func (c manualCodec[T]) Encode(v T) RawTagValue {
	return c.encode(v)
}

func (c manualCodec[T]) Decode(raw RawTagValue) (T, error) {
	return c.decode(raw)
}

// Enum builds a codec for a fieldless enumeration type: every variant maps
// to a fixed string literal. Decoding matches case-sensitively against the
// registered literals. Literals are not checked for distinctness; a mapping
// with colliding literals is an authoring bug, and which variant such a
// literal decodes to is unspecified.
func Enum[T comparable](literals map[T]string) Codec[T] {
	c := enumCodec[T]{
		encode: make(map[T]RawTagValue, len(literals)),
		decode: make(map[RawTagValue]T, len(literals)),
	}
	for variant, lit := range literals {
		c.encode[variant] = RawTagValue(lit)
		c.decode[RawTagValue(lit)] = variant
	}
	return c
}

type enumCodec[T comparable] struct {
	encode map[T]RawTagValue
	decode map[RawTagValue]T
}

func (c enumCodec[T]) Encode(v T) RawTagValue {
	raw, ok := c.encode[v]
	if !ok {
		panic(fmt.Sprintf("tags: enum value %v has no registered literal", v))
	}
	return raw
}

func (c enumCodec[T]) Decode(raw RawTagValue) (T, error) {
	v, ok := c.decode[raw]
	if !ok {
		var zero T
		return zero, &ValueError{Value: raw, Message: "invalid enum value"}
	}
	return v, nil
}

// Transparent derives a codec for a single-field wrapper type by reusing the
// wrapped type's codec verbatim: encode unwraps then encodes, decode decodes
// then rewraps.
func Transparent[Outer, Inner any](inner Codec[Inner], wrap func(Inner) Outer, unwrap func(Outer) Inner) Codec[Outer] {
	return transparentCodec[Outer, Inner]{inner: inner, wrap: wrap, unwrap: unwrap}
}

type transparentCodec[Outer, Inner any] struct {
	inner  Codec[Inner]
	wrap   func(Inner) Outer
	unwrap func(Outer) Inner
}

func (c transparentCodec[Outer, Inner]) Encode(v Outer) RawTagValue {
	return c.inner.Encode(c.unwrap(v))
}

func (c transparentCodec[Outer, Inner]) Decode(raw RawTagValue) (Outer, error) {
	v, err := c.inner.Decode(raw)
	if err != nil {
		var zero Outer
		return zero, err
	}
	return c.wrap(v), nil
}
