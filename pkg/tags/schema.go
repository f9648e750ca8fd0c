package tags

// Field describes how one field of a record type R binds to a tag key and a
// codec. Build fields with Required and Optional; the accessor selects the
// field's location within the record.
type Field[R any] interface {
	fromTags(TagList, *R) error
	intoTags(*R, *TagList)
}

// Schema is the fixed, ordered description of how a record type R maps to a
// tag list. It is never mutated after construction and is safe to share
// across concurrent callers.
type Schema[R any] struct {
	fields []Field[R]
}

func NewSchema[R any](fields ...Field[R]) *Schema[R] {
	return &Schema[R]{fields: fields}
}

// Required binds a field that must be present in the input. Decoding a list
// without its key fails with a TagNotFoundError.
func Required[R, T any](key TagKey, codec Codec[T], field func(*R) *T) Field[R] {
	return requiredField[R, T]{key: key, codec: codec, field: field}
}

// Optional binds a field that may be absent. Absence is represented as a nil
// pointer in the record; an absent field emits nothing on encode, not a null
// marker.
func Optional[R, T any](key TagKey, codec Codec[T], field func(*R) **T) Field[R] {
	return optionalField[R, T]{key: key, codec: codec, field: field}
}

// FromTags decodes a tag list into a record, visiting fields in schema
// order. The first failure aborts the whole decode: a missing required key
// yields a TagNotFoundError, a present-but-undecodable value yields a
// TagError wrapping the codec's error. Callers that want every violation at
// once must check field by field with the single-tag APIs.
func (s *Schema[R]) FromTags(list TagList) (R, error) {
	var r R
	for _, f := range s.fields {
		if err := f.fromTags(list, &r); err != nil {
			var zero R
			return zero, err
		}
	}
	return r, nil
}

// IntoTags encodes a record into a tag list. Output order matches schema
// field order; absent optional fields are omitted. Encoding never fails.
func (s *Schema[R]) IntoTags(r R) TagList {
	var out TagList
	for _, f := range s.fields {
		f.intoTags(&r, &out)
	}
	return out
}

type requiredField[R, T any] struct {
	key   TagKey
	codec Codec[T]
	field func(*R) *T
}

func (f requiredField[R, T]) fromTags(list TagList, r *R) error {
	rt, ok := list.Get(f.key)
	if !ok {
		return &TagNotFoundError{Key: f.key}
	}
	v, err := f.codec.Decode(rt.Value)
	if err != nil {
		return &TagError{Key: f.key, Err: err}
	}
	*f.field(r) = v
	return nil
}

func (f requiredField[R, T]) intoTags(r *R, out *TagList) {
	out.Push(RawTag{Key: f.key, Value: f.codec.Encode(*f.field(r))})
}

type optionalField[R, T any] struct {
	key   TagKey
	codec Codec[T]
	field func(*R) **T
}

func (f optionalField[R, T]) fromTags(list TagList, r *R) error {
	rt, ok := list.Get(f.key)
	if !ok {
		*f.field(r) = nil
		return nil
	}
	v, err := f.codec.Decode(rt.Value)
	if err != nil {
		return &TagError{Key: f.key, Err: err}
	}
	*f.field(r) = &v
	return nil
}

func (f optionalField[R, T]) intoTags(r *R, out *TagList) {
	p := *f.field(r)
	if p == nil {
		return
	}
	out.Push(RawTag{Key: f.key, Value: f.codec.Encode(*p)})
}
