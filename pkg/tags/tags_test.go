package tags

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagDirectly(t *testing.T) {
	tag1 := New[bool]("Name", true, Bool())
	require.True(t, tag1.Value())
	require.Equal(t, TagKey("Name"), tag1.Key())

	tag2, err := Parse("Name", "true", Bool())
	require.NoError(t, err)
	require.True(t, tag2.Value())

	require.Equal(t, RawTag{Key: "Name", Value: "true"}, tag2.Raw())
}

func TestParseFailure(t *testing.T) {
	_, err := Parse("Name", "yes", Bool())
	var berr *BoolValueError
	require.ErrorAs(t, err, &berr)
	require.Equal(t, RawTagValue("yes"), berr.Value)
}

func TestFromRaw(t *testing.T) {
	tag, err := FromRaw(RawTag{Key: "count", Value: "42"}, Int64())
	require.NoError(t, err)
	require.Equal(t, int64(42), tag.Value())
	require.Equal(t, RawTag{Key: "count", Value: "42"}, tag.Raw())
}

func TestTagListGet(t *testing.T) {
	l := TagList{
		{Key: "a", Value: "1"},
		{Key: "b", Value: "2"},
	}
	rt, ok := l.Get("b")
	require.True(t, ok)
	require.Equal(t, RawTagValue("2"), rt.Value)

	_, ok = l.Get("c")
	require.False(t, ok)
}

func TestTagListDuplicateKeys(t *testing.T) {
	var l TagList
	l.Push(RawTag{Key: "a", Value: "first"})
	l.Push(RawTag{Key: "a", Value: "second"})

	// first match wins on lookup, both entries persist
	rt, ok := l.Get("a")
	require.True(t, ok)
	assert.Equal(t, RawTagValue("first"), rt.Value)
	assert.Len(t, l, 2)
}

func TestTagListAppend(t *testing.T) {
	var l TagList
	l.Push(RawTag{Key: "a", Value: "1"})
	l.Extend([]RawTag{{Key: "b", Value: "2"}, {Key: "c", Value: "3"}})
	l.Join(TagList{{Key: "d", Value: "4"}})

	require.Equal(t, TagList{
		{Key: "a", Value: "1"},
		{Key: "b", Value: "2"},
		{Key: "c", Value: "3"},
		{Key: "d", Value: "4"},
	}, l)
}
