package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/viant/tagrec/catalog"
	"github.com/viant/tagrec/engine"
)

func newImportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "import <csv> <sqlite>",
		Short: "Copy a CSV catalog into a SQLite database",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.LoadCSVFile(args[0])
			if err != nil {
				return err
			}
			db, err := engine.OpenContext(cmd.Context(), args[1])
			if err != nil {
				return err
			}
			defer db.Close()
			store, err := catalog.NewStore(cmd.Context(), db)
			if err != nil {
				return err
			}
			if err := store.Import(cmd.Context(), cat); err != nil {
				return err
			}
			ctx.logger.WithFields(logrus.Fields{"items": cat.Len(), "db": args[1]}).Info("catalog imported")
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d items\n", cat.Len())
			return nil
		},
	}
}
