package cloudtagcmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/brendoncarroll/cloudtag/pkg/tagquery"
)

var queryCmd = &cobra.Command{
	Use:   "query KEY=VALUE ...",
	Short: "find resources whose tags match any of the given pairs",
	RunE: func(cmd *cobra.Command, args []string) error {
		pred, err := parsePredicate(args)
		if err != nil {
			return err
		}
		q := tagquery.Query{
			Where: *pred,
			Limit: 100,
		}
		logrus.Infof("searching for query %v\n", q)
		res, err := tagquery.DoQuery(ctx, resources, q)
		if err != nil {
			return err
		}
		w := bufio.NewWriter(cmd.OutOrStdout())
		for _, id := range res.IDs {
			tl, err := resources.GetTags(ctx, id)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "%v\t%v\n", id, tl); err != nil {
				return err
			}
		}
		return w.Flush()
	},
}

func parsePredicate(args []string) (*tagquery.Predicate, error) {
	var subQueries []tagquery.Query
	for _, arg := range args {
		switch {
		case strings.Contains(arg, "="):
			parts := strings.SplitN(arg, "=", 2)
			q := tagquery.Query{
				Where: tagquery.Predicate{
					Op:    tagquery.OpEq,
					Key:   parts[0],
					Value: parts[1],
				},
				Limit: 100,
			}
			subQueries = append(subQueries, q)
		default:
			return nil, errors.Errorf("could not parse into predicate %q", arg)
		}
	}
	return &tagquery.Predicate{
		Op:         tagquery.OpOR,
		SubQueries: subQueries,
	}, nil
}
