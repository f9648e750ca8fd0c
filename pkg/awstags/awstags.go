// Package awstags converts between the generic tag representation and the
// tag shapes of the AWS SDK. It is pure type plumbing: no clients, no
// requests, no retries. The SDK models keys and values as nullable, so
// conversion from the SDK is the one place a collaborator-reported absence
// can surface.
package awstags

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/brendoncarroll/cloudtag/pkg/tags"
)

// FromSDK converts the tag set of a GetObjectTagging/GetBucketTagging
// response. A tag with a nil key yields ErrKeyAbsent; a nil value yields a
// ValueAbsentError carrying the key.
func FromSDK(in []s3types.Tag) (tags.TagList, error) {
	out := make(tags.TagList, 0, len(in))
	for _, t := range in {
		if t.Key == nil {
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

// ToSDK converts a tag list into the slice shape the SDK's request builders
// take. Order is preserved.
func ToSDK(l tags.TagList) []s3types.Tag {
	out := make([]s3types.Tag, 0, len(l))
	for _, rt := range l {
		out = append(out, s3types.Tag{
			Key:   aws.String(rt.Key.String()),
			Value: aws.String(rt.Value.String()),
		})
	}
	return out
}

// ToTagging wraps a tag list in the envelope PutObjectTagging expects.
func ToTagging(l tags.TagList) *s3types.Tagging {
	return &s3types.Tagging{TagSet: ToSDK(l)}
}
