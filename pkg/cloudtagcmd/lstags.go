package cloudtagcmd

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brendoncarroll/cloudtag/pkg/tags"
)

var lsTagsCmd = &cobra.Command{
	Use:   "ls-tags",
	Short: "list every (resource, key, value) to stdout",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := bufio.NewWriter(cmd.OutOrStdout())
		fmtStr := "%-24v\t%-20s\t%-30s\n"
		if _, err := fmt.Fprintf(w, fmtStr, "RESOURCE", "KEY", "VALUE"); err != nil {
			return err
		}
		if err := resources.Scan(ctx, func(id string, tl tags.TagList) error {
			for _, rt := range tl {
				if _, err := fmt.Fprintf(w, fmtStr, id, rt.Key, rt.Value); err != nil {
					return err
				}
			}
			return nil
		}); err != nil {
			return err
		}
		return w.Flush()
	},
}
