// Package cloudtagcmd implements the cloudtag command line tool. It is the
// surrounding application for the translation layer: it loads a JSON file of
// resources and their raw tags, and lets you inspect, validate, and query
// them.
package cloudtagcmd

import (
	"context"
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/brendoncarroll/cloudtag/pkg/tagquery"
	"github.com/brendoncarroll/cloudtag/pkg/tags"
)

var (
	resources tagquery.MemBackend
	ctx       = context.Background()

	inputPath string
)

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&inputPath, "file", "f", "", "JSON file of {id: {key: value}} resources")
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(lsTagsCmd)
}

var rootCmd = &cobra.Command{
	Use:   "cloudtag",
	Short: "cloudtag inspects and translates resource tag sets",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
}

func setup() error {
	resources = tagquery.MemBackend{}
	if inputPath == "" {
		return nil
	}
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return err
	}
	var m map[string]map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return errors.Wrapf(err, "parsing resource file %s", inputPath)
	}
	for id, kvs := range m {
		var tl tags.TagList
		for k, v := range kvs {
			tl.Push(tags.RawTag{Key: tags.TagKey(k), Value: tags.RawTagValue(v)})
		}
		resources[id] = tl
	}
	return nil
}
