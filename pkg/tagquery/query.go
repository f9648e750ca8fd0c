// Package tagquery evaluates predicate queries over the tag sets of a
// collection of resources. The resources themselves come from a Backend,
// typically a snapshot produced by whatever discovery call listed them;
// nothing in this package talks to the network or persists anything.
package tagquery

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/brendoncarroll/cloudtag/pkg/tags"
)

// ID identifies one tagged resource to the backend that produced it.
type ID = string

type ResultSet struct {
	IDs                  []ID
	Offset, Count, Total int
}

type PredicateOp string

const (
	OpNone = PredicateOp("NONE")
	OpAny  = PredicateOp("ANY")

	OpEq = PredicateOp("=")
	OpLt = PredicateOp("<")
	OpGt = PredicateOp(">")

	OpContains = PredicateOp("CONTAINS")
	OpRegexp   = PredicateOp("REGEXP")

	OpIn = PredicateOp("IN")

	OpOR  = PredicateOp("OR")
	OpAND = PredicateOp("AND")
)

type Query struct {
	Where Predicate `json:"where"`
	Limit int       `json:"limit"`
}

type Predicate struct {
	Op PredicateOp `json:"op"`

	Key string `json:"key"`

	Value      string   `json:"value,omitempty"`
	Values     []string `json:"values,omitempty"`
	SubQueries []Query  `json:"sub_queries,omitempty"`
}

var ErrStopIter = fmt.Errorf("stop iteration")

type IterFunc = func(id ID, tl tags.TagList) error

// Backend supplies the resources a query runs over.
type Backend interface {
	Scan(ctx context.Context, fn IterFunc) error
	GetTags(ctx context.Context, id ID) (tags.TagList, error)
}

func DoQuery(ctx context.Context, be Backend, q Query) (*ResultSet, error) {
	if q.Where.Op == PredicateOp("") {
		q.Where.Op = OpAny
	}
	if q.Limit <= 0 {
		q.Limit = math.MaxInt
	}

	ids := map[ID]int{}
	if err := query(ctx, be, ids, q); err != nil {
		return nil, err
	}

	resultSet := &ResultSet{
		IDs:    make([]ID, 0, len(ids)),
		Count:  len(ids),
		Offset: 0,
		Total:  -1,
	}
	for id := range ids {
		resultSet.IDs = append(resultSet.IDs, id)
	}
	return resultSet, nil
}

// query adds one count to ids[id] for every resource matching q, stopping at
// q.Limit matches.
func query(ctx context.Context, be Backend, ids map[ID]int, q Query) error {
	if q.Limit <= 0 {
		q.Limit = math.MaxInt
	}
	switch q.Where.Op {
	case OpOR:
		ids2 := map[ID]int{}
		if err := queryOR(ctx, be, ids2, q.Limit, q.Where.SubQueries); err != nil {
			return err
		}
		mergeCapped(ids, ids2, q.Limit)
	case OpAND:
		ids2 := map[ID]int{}
		if err := queryAND(ctx, be, ids2, q.Where.SubQueries); err != nil {
			return err
		}
		mergeCapped(ids, ids2, q.Limit)
	case OpAny:
		count := 0
		err := be.Scan(ctx, func(id ID, _ tags.TagList) error {
			ids[id]++
			count++
			if count >= q.Limit {
				return ErrStopIter
			}
			return nil
		})
		if err == ErrStopIter {
			err = nil
		}
		return err
	case OpNone:
		return nil
	default:
		return scanMatches(ctx, be, q.Where, func(id ID) bool {
			ids[id]++
			return len(ids) < q.Limit
		})
	}
	return nil
}

// queryAND keeps only the ids matched by every subquery, counting rounds the
// way the inverted-index scan used to.
func queryAND(ctx context.Context, be Backend, ids map[ID]int, subs []Query) error {
	round := 0
	for _, q := range subs {
		if err := query(ctx, be, ids, q); err != nil {
			return err
		}
		round++
		for id, count := range ids {
			if count < round {
				delete(ids, id)
			}
		}
	}
	return nil
}

func queryOR(ctx context.Context, be Backend, ids map[ID]int, limit int, subs []Query) error {
	for _, q := range subs {
		if err := query(ctx, be, ids, q); err != nil {
			return err
		}
		if len(ids) >= limit {
			break
		}
	}
	return nil
}

func mergeCapped(ids, ids2 map[ID]int, limit int) {
	count := 0
	for id := range ids2 {
		if count >= limit {
			break
		}
		ids[id]++
		count++
	}
}

// scanMatches scans every resource and calls fn for each one whose tag at
// pred.Key satisfies the predicate. A resource without the key never
// matches. fn returning false stops the scan.
func scanMatches(ctx context.Context, be Backend, pred Predicate, fn func(id ID) bool) error {
	predFunc, err := makePredicateFunc(pred)
	if err != nil {
		return err
	}
	err = be.Scan(ctx, func(id ID, tl tags.TagList) error {
		rt, ok := tl.Get(tags.TagKey(pred.Key))
		if !ok {
			return nil
		}
		if predFunc(rt.Value) {
			if !fn(id) {
				return ErrStopIter
			}
		}
		return nil
	})
	if err == ErrStopIter {
		err = nil
	}
	return err
}

func makePredicateFunc(pred Predicate) (func(tags.RawTagValue) bool, error) {
	target := pred.Value
	var fn func(tags.RawTagValue) bool
	switch pred.Op {
	case OpEq:
		fn = func(value tags.RawTagValue) bool {
			return string(value) == target
		}
	case OpLt:
		fn = func(value tags.RawTagValue) bool {
			return string(value) < target
		}
	case OpGt:
		fn = func(value tags.RawTagValue) bool {
			return string(value) > target
		}
	case OpContains:
		fn = func(value tags.RawTagValue) bool {
			return strings.Contains(string(value), target)
		}
	case OpIn:
		fn = func(value tags.RawTagValue) bool {
			for _, pv := range pred.Values {
				if string(value) == pv {
					return true
				}
			}
			return false
		}
	case OpAny:
		fn = func(tags.RawTagValue) bool { return true }
	case OpNone:
		fn = func(tags.RawTagValue) bool { return false }
	case OpRegexp:
		re, err := regexp.Compile(pred.Value)
		if err != nil {
			return nil, err
		}
		fn = func(value tags.RawTagValue) bool {
			return re.MatchString(string(value))
		}
	default:
		return nil, errInvalidOp(pred.Op)
	}
	return fn, nil
}
