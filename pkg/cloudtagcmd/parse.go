package cloudtagcmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/brendoncarroll/cloudtag/pkg/tags"
)

var parseType string

func init() {
	parseCmd.Flags().StringVar(&parseType, "type", "string", "codec to validate values with: string, bool, int64, time, json")
}

var parseCmd = &cobra.Command{
	Use:   "parse KEY=VALUE ...",
	Short: "parse raw tag pairs and validate their values with a codec",
	RunE: func(cmd *cobra.Command, args []string) error {
		tl, err := parseTagArgs(args)
		if err != nil {
			return err
		}
		w := bufio.NewWriter(cmd.OutOrStdout())
		fmtStr := "%-20s\t%-30s\t%s\n"
		if _, err := fmt.Fprintf(w, fmtStr, "KEY", "VALUE", "STATUS"); err != nil {
			return err
		}
		for _, rt := range tl {
			status := "ok"
			if err := decodeAs(parseType, rt.Value); err != nil {
				status = err.Error()
			}
			if _, err := fmt.Fprintf(w, fmtStr, rt.Key, rt.Value, status); err != nil {
				return err
			}
		}
		return w.Flush()
	},
}

func parseTagArgs(args []string) (tags.TagList, error) {
	var tl tags.TagList
	for _, arg := range args {
		parts := strings.SplitN(arg, "=", 2)
		if len(parts) != 2 || parts[0] == "" {
			return nil, errors.Errorf("could not parse into tag %q", arg)
		}
		tl.Push(tags.RawTag{Key: tags.TagKey(parts[0]), Value: tags.RawTagValue(parts[1])})
	}
	return tl, nil
}

func decodeAs(typeName string, raw tags.RawTagValue) error {
	switch typeName {
	case "string":
		_, err := tags.String().Decode(raw)
		return err
	case "bool":
		_, err := tags.Bool().Decode(raw)
		return err
	case "int64":
		_, err := tags.Int64().Decode(raw)
		return err
	case "time":
		_, err := tags.Time().Decode(raw)
		return err
	case "json":
		_, err := tags.JSON[map[string]interface{}]().Decode(raw)
		return err
	default:
		return errors.Errorf("unknown tag type %q", typeName)
	}
}
