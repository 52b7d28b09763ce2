package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newRecommendCommand(ctx *commandContext) *cobra.Command {
	var k int
	cmd := &cobra.Command{
		Use:   "recommend <title>",
		Short: "Show the items most similar to a catalog title",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := ctx.newEngine(cmd.Context())
			if err != nil {
				return err
			}
			if k <= 0 {
				k = ctx.cfg.Recommend.K
			}
			title := strings.Join(args, " ")
			res := eng.Recommend(title, k)
			out := cmd.OutOrStdout()
			if !res.Found {
				fmt.Fprintln(out, res.Message())
				return nil
			}
			fmt.Fprintf(out, "Top %d Recommended Movies for %q:\n", len(res.Titles), res.Item.Title)
			rows := make([][]string, len(res.Titles))
			for i, t := range res.Titles {
				rows[i] = []string{strconv.Itoa(i + 1), t}
			}
			fmt.Fprintln(out, renderTable([]string{"#", "Title"}, rows, []columnAlignment{alignRight, alignLeft}))
			return nil
		},
	}
	cmd.Flags().IntVarP(&k, "count", "k", 0, "Number of recommendations (default from config)")
	return cmd
}
