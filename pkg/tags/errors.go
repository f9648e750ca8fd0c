package tags

import (
	"errors"
	"fmt"
)

// ErrKeyAbsent reports that the external tagging system returned a raw pair
// with no key at all. There is no key to attribute the failure to.
var ErrKeyAbsent = errors.New("collaborator returned a tag with no key")

// ValueError reports that a single raw string failed to decode into the
// target type. It carries the offending raw value.
type ValueError struct {
	Value   RawTagValue
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("invalid tag value %q: %s", e.Value, e.Message)
}

// BoolValueError is like ValueError, but specific to booleans.
type BoolValueError struct {
	Value RawTagValue
}

func (e *BoolValueError) Error() string {
	return fmt.Sprintf("invalid tag bool value %q", e.Value)
}

// ValueAbsentError reports that the external tagging system returned a key
// with no value.
type ValueAbsentError struct {
	Key TagKey
}

func (e *ValueAbsentError) Error() string {
	return fmt.Sprintf("collaborator returned no value for tag %q", e.Key)
}

// TagError attributes a value-level failure to a specific key.
type TagError struct {
	Key TagKey
	Err error
}

func (e *TagError) Error() string {
	return fmt.Sprintf("failed parsing tag %q: %v", e.Key, e.Err)
}

func (e *TagError) Unwrap() error {
	return e.Err
}

// TagNotFoundError reports that a required tag was not present in the input
// list.
type TagNotFoundError struct {
	Key TagKey
}

func (e *TagNotFoundError) Error() string {
	return fmt.Sprintf("tag %q not found in input", e.Key)
}
