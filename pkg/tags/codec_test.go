package tags

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoolCodec(t *testing.T) {
	c := Bool()
	require.Equal(t, RawTagValue("true"), c.Encode(true))
	require.Equal(t, RawTagValue("false"), c.Encode(false))

	v, err := c.Decode("true")
	require.NoError(t, err)
	require.True(t, v)
	v, err = c.Decode("false")
	require.NoError(t, err)
	require.False(t, v)

	for _, raw := range []RawTagValue{"TRUE", "True", "1", "", "yes"} {
		_, err := c.Decode(raw)
		var berr *BoolValueError
		require.ErrorAs(t, err, &berr)
		require.Equal(t, raw, berr.Value)
	}
}

func TestStringCodec(t *testing.T) {
	c := String()
	// no quoting in either direction
	require.Equal(t, RawTagValue(`hi "there"`), c.Encode(`hi "there"`))
	v, err := c.Decode("plain")
	require.NoError(t, err)
	require.Equal(t, "plain", v)
}

func TestInt64Codec(t *testing.T) {
	c := Int64()
	require.Equal(t, RawTagValue("-42"), c.Encode(-42))
	v, err := c.Decode("-42")
	require.NoError(t, err)
	require.Equal(t, int64(-42), v)

	_, err = c.Decode("4.2")
	var verr *ValueError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, RawTagValue("4.2"), verr.Value)
}

func TestTimeCodec(t *testing.T) {
	c := Time()
	ts := time.Date(2022, 7, 19, 13, 37, 1, 0, time.UTC)
	require.Equal(t, RawTagValue("2022-07-19T13:37:01"), c.Encode(ts))

	v, err := c.Decode("2022-07-19T13:37:01")
	require.NoError(t, err)
	require.True(t, ts.Equal(v))

	_, err = c.Decode("2022-07-19 13:37:01")
	var verr *ValueError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, RawTagValue("2022-07-19 13:37:01"), verr.Value)
}

type structTag struct {
	Foo string `json:"foo"`
	Bar bool   `json:"bar"`
}

func TestJSONCodec(t *testing.T) {
	c := JSON[structTag]()
	in := structTag{Foo: "hi", Bar: false}
	raw := c.Encode(in)
	require.Equal(t, RawTagValue(`{"foo":"hi","bar":false}`), raw)

	out, err := c.Decode(raw)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestJSONCodecMalformed(t *testing.T) {
	c := JSON[structTag]()
	_, err := c.Decode(`{"foo":`)
	var verr *ValueError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, RawTagValue(`{"foo":`), verr.Value)
	require.NotEmpty(t, verr.Message)
}

type letter int

const (
	letterA letter = iota
	letterB
)

func letterCodec() Codec[letter] {
	return Enum(map[letter]string{
		letterA: "A",
		letterB: "C", // renamed
	})
}

func TestEnumCodec(t *testing.T) {
	c := letterCodec()
	require.Equal(t, RawTagValue("A"), c.Encode(letterA))
	require.Equal(t, RawTagValue("C"), c.Encode(letterB))

	v, err := c.Decode("A")
	require.NoError(t, err)
	require.Equal(t, letterA, v)
	v, err = c.Decode("C")
	require.NoError(t, err)
	require.Equal(t, letterB, v)

	// "B" is not a registered literal once renamed
	_, err = c.Decode("B")
	var verr *ValueError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, RawTagValue("B"), verr.Value)
	assert.Equal(t, "invalid enum value", verr.Message)

	// decoding is case-sensitive
	_, err = c.Decode("a")
	require.Error(t, err)
}

type instanceID string

func instanceIDCodec() Codec[instanceID] {
	return Transparent(String(),
		func(s string) instanceID { return instanceID(s) },
		func(id instanceID) string { return string(id) },
	)
}

func TestTransparentCodec(t *testing.T) {
	c := instanceIDCodec()
	require.Equal(t, RawTagValue("i-0abc"), c.Encode(instanceID("i-0abc")))
	v, err := c.Decode("i-0abc")
	require.NoError(t, err)
	require.Equal(t, instanceID("i-0abc"), v)
}

func TestTransparentCodecPropagatesError(t *testing.T) {
	type count int64
	c := Transparent(Int64(),
		func(v int64) count { return count(v) },
		func(v count) int64 { return int64(v) },
	)
	_, err := c.Decode("not-a-number")
	var verr *ValueError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, RawTagValue("not-a-number"), verr.Value)
}

func TestRoundTrip(t *testing.T) {
	t.Run("bool", func(t *testing.T) {
		c := Bool()
		for _, v := range []bool{true, false} {
			got, err := c.Decode(c.Encode(v))
			require.NoError(t, err)
			require.Equal(t, v, got)
		}
	})
	t.Run("int64", func(t *testing.T) {
		c := Int64()
		for _, v := range []int64{0, 1, -1, 1 << 40} {
			got, err := c.Decode(c.Encode(v))
			require.NoError(t, err)
			require.Equal(t, v, got)
		}
	})
	t.Run("json", func(t *testing.T) {
		c := JSON[structTag]()
		for _, v := range []structTag{{}, {Foo: "x", Bar: true}} {
			got, err := c.Decode(c.Encode(v))
			require.NoError(t, err)
			require.Equal(t, v, got)
		}
	})
	t.Run("enum", func(t *testing.T) {
		c := letterCodec()
		for _, v := range []letter{letterA, letterB} {
			got, err := c.Decode(c.Encode(v))
			require.NoError(t, err)
			require.Equal(t, v, got)
		}
	})
	t.Run("time", func(t *testing.T) {
		c := Time()
		v := time.Date(1999, 12, 31, 23, 59, 59, 0, time.UTC)
		got, err := c.Decode(c.Encode(v))
		require.NoError(t, err)
		require.True(t, v.Equal(got))
	})
}
