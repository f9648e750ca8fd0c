// Package azuretags converts between the generic tag representation and the
// blob index tag shapes of the Azure Blob Storage SDK. Like awstags it is
// pure type plumbing; the SDK's nullable keys and values are the source of
// collaborator-reported absence errors.
package azuretags

import (
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/container"

	"github.com/brendoncarroll/cloudtag/pkg/tags"
)

// FromSDK converts the tag set of a GetTags response. A nil entry or nil key
// yields ErrKeyAbsent; a nil value yields a ValueAbsentError carrying the
// key.
func FromSDK(in []*container.BlobTag) (tags.TagList, error) {
	out := make(tags.TagList, 0, len(in))
	for _, t := range in {
		if t == nil || t.Key == nil {
			return nil, tags.ErrKeyAbsent
		}
		key := tags.TagKey(*t.Key)
		if t.Value == nil {
			return nil, &tags.ValueAbsentError{Key: key}
		}
		out.Push(tags.RawTag{Key: key, Value: tags.RawTagValue(*t.Value)})
	}
	return out, nil
}

// ToSDK converts a tag list into the SDK's tag set shape. Order is
// preserved.
func ToSDK(l tags.TagList) []*container.BlobTag {
	out := make([]*container.BlobTag, 0, len(l))
	for _, rt := range l {
		out = append(out, &container.BlobTag{
			Key:   to.Ptr(rt.Key.String()),
			Value: to.Ptr(rt.Value.String()),
		})
	}
	return out
}

// ToMap converts a tag list into the map shape SetTags takes. On duplicate
// keys the first entry wins, matching TagList.Get.
func ToMap(l tags.TagList) map[string]string {
	out := make(map[string]string, len(l))
	for _, rt := range l {
		if _, ok := out[rt.Key.String()]; ok {
			continue
		}
		out[rt.Key.String()] = rt.Value.String()
	}
	return out
}
