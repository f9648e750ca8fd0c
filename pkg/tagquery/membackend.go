package tagquery

import (
	"context"

	"github.com/brendoncarroll/cloudtag/pkg/tags"
	"github.com/pkg/errors"
)

// MemBackend is an in-memory Backend keyed by resource ID. Scan order is not
// deterministic.
type MemBackend map[ID]tags.TagList

func (b MemBackend) Scan(ctx context.Context, fn IterFunc) error {
	for id, tl := range b {
		if err := fn(id, tl); err != nil {
			return err
		}
	}
	return nil
}

func (b MemBackend) GetTags(ctx context.Context, id ID) (tags.TagList, error) {
	tl, ok := b[id]
	if !ok {
		return nil, errors.Errorf("no resource %q", id)
	}
	return tl, nil
}
