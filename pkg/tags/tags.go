// Package tags translates between typed application values and the flat,
// stringly-typed key-value tags that cloud resource APIs expose. A codec maps
// one typed value to and from one raw string; a schema maps a whole record to
// and from a list of raw (key, value) pairs.
//
// Everything in this package is a pure function over immutable inputs, so
// codecs, schemas, and tag lists are safe to share across goroutines.
package tags

// TagKey identifies a single tag on a resource. Keys are compared by exact
// string equality; ordering is irrelevant.
type TagKey string

func (k TagKey) String() string {
	return string(k)
}

// RawTagValue holds the wire representation of exactly one tag's value,
// uninterpreted. This layer places no length or charset constraints on it.
type RawTagValue string

func (v RawTagValue) String() string {
	return string(v)
}

// RawTag is the unit actually exchanged with the external tagging system: an
// uninterpreted (key, value) string pair.
type RawTag struct {
	Key   TagKey
	Value RawTagValue
}

// TagList is an order-preserving collection of raw tags, the full wire-level
// payload for one resource. It is a transient transfer representation, not a
// store: lookup is by key, duplicate keys are tolerated, and the first match
// wins on Get. Lists returned by a collaborator are never normalized.
type TagList []RawTag

// Get returns the first tag with the given key.
func (l TagList) Get(key TagKey) (RawTag, bool) {
	for _, t := range l {
		if t.Key == key {
			return t, true
		}
	}
	return RawTag{}, false
}

// Push appends a tag. No dedup, no key-conflict detection.
func (l *TagList) Push(t RawTag) {
	*l = append(*l, t)
}

// Extend appends every tag in ts, preserving order.
func (l *TagList) Extend(ts []RawTag) {
	*l = append(*l, ts...)
}

// Join appends every tag in other, preserving order.
func (l *TagList) Join(other TagList) {
	*l = append(*l, other...)
}

// Tag is a single named, typed value ready for wire exchange. Construct one
// with New when you already hold a T, or with Parse/FromRaw to decode a raw
// value through T's codec.
type Tag[T any] struct {
	key   TagKey
	value T
	codec Codec[T]
}

// New constructs a tag directly from a known value. No parsing happens.
func New[T any](key TagKey, value T, codec Codec[T]) Tag[T] {
	return Tag[T]{key: key, value: value, codec: codec}
}

// Parse constructs a tag by decoding raw through the codec.
func Parse[T any](key TagKey, raw RawTagValue, codec Codec[T]) (Tag[T], error) {
	value, err := codec.Decode(raw)
	if err != nil {
		return Tag[T]{}, err
	}
	return Tag[T]{key: key, value: value, codec: codec}, nil
}

// FromRaw constructs a tag by decoding an existing raw pair through the
// codec.
func FromRaw[T any](rt RawTag, codec Codec[T]) (Tag[T], error) {
	return Parse(rt.Key, rt.Value, codec)
}

func (t Tag[T]) Key() TagKey {
	return t.key
}

func (t Tag[T]) Value() T {
	return t.value
}

// Raw encodes the held value through the codec. It always succeeds; encode
// is total for every codec.
func (t Tag[T]) Raw() RawTag {
	return RawTag{Key: t.key, Value: t.codec.Encode(t.value)}
}
