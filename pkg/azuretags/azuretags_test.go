package azuretags

import (
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/container"
	"github.com/stretchr/testify/require"

	"github.com/brendoncarroll/cloudtag/pkg/tags"
)

func TestFromSDK(t *testing.T) {
	l, err := FromSDK([]*container.BlobTag{
		{Key: to.Ptr("Name"), Value: to.Ptr("server1")},
		{Key: to.Ptr("Active"), Value: to.Ptr("true")},
	})
	require.NoError(t, err)
	require.Equal(t, tags.TagList{
		{Key: "Name", Value: "server1"},
		{Key: "Active", Value: "true"},
	}, l)
}

func TestFromSDKAbsences(t *testing.T) {
	_, err := FromSDK([]*container.BlobTag{nil})
	require.ErrorIs(t, err, tags.ErrKeyAbsent)

	_, err = FromSDK([]*container.BlobTag{{Key: nil, Value: to.Ptr("x")}})
	require.ErrorIs(t, err, tags.ErrKeyAbsent)

	_, err = FromSDK([]*container.BlobTag{{Key: to.Ptr("Name"), Value: nil}})
	var aerr *tags.ValueAbsentError
	require.ErrorAs(t, err, &aerr)
	require.Equal(t, tags.TagKey("Name"), aerr.Key)
}

func TestRoundTrip(t *testing.T) {
	in := tags.TagList{
		{Key: "env", Value: "prod"},
		{Key: "note", Value: ""},
	}
	out, err := FromSDK(ToSDK(in))
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestToMap(t *testing.T) {
	m := ToMap(tags.TagList{
		{Key: "a", Value: "first"},
		{Key: "a", Value: "second"},
		{Key: "b", Value: "2"},
	})
	require.Equal(t, map[string]string{"a": "first", "b": "2"}, m)
}
