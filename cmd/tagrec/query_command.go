package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/viant/tagrec/engine"
	"github.com/viant/tagrec/recommend"
	"github.com/viant/tagrec/rectab"
)

// queryEngineName is the engine name the recs table is bound to.
const queryEngineName = "catalog"

func newQueryCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "query <sql>",
		Short: "Run SQL against the recs virtual table",
		Long: "Run a SQL statement against an in-memory database exposing the\n" +
			"catalog recommendations as the recs(title, rank, score) virtual table,\n" +
			"e.g. SELECT title, score FROM recs WHERE title MATCH 'Avatar' LIMIT 5",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := ctx.newEngine(cmd.Context())
			if err != nil {
				return err
			}
			headers, rows, err := runQuery(cmd.Context(), eng, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows, nil))
			return nil
		},
	}
}

func runQuery(ctx context.Context, eng *recommend.Engine, query string) ([]string, [][]string, error) {
	rectab.Attach(queryEngineName, eng)
	defer rectab.Attach(queryEngineName, nil)

	db, err := engine.Open(":memory:")
	if err != nil {
		return nil, nil, err
	}
	defer db.Close()
	if err := rectab.Register(db); err != nil {
		return nil, nil, err
	}
	if _, err := db.ExecContext(ctx, fmt.Sprintf(`CREATE VIRTUAL TABLE recs USING %s(%s)`, rectab.ModuleName, queryEngineName)); err != nil {
		return nil, nil, fmt.Errorf("create recs table: %w", err)
	}

	rs, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, nil, err
	}
	defer rs.Close()
	return scanRows(rs)
}

func scanRows(rs *sql.Rows) ([]string, [][]string, error) {
	headers, err := rs.Columns()
	if err != nil {
		return nil, nil, err
	}
	var out [][]string
	for rs.Next() {
		values := make([]any, len(headers))
		ptrs := make([]any, len(headers))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rs.Scan(ptrs...); err != nil {
			return nil, nil, err
		}
		row := make([]string, len(values))
		for i, v := range values {
			switch tv := v.(type) {
			case nil:
				row[i] = ""
			case []byte:
				row[i] = string(tv)
			case float64:
				row[i] = fmt.Sprintf("%.4f", tv)
			default:
				row[i] = fmt.Sprint(tv)
			}
		}
		out = append(out, row)
	}
	return headers, out, rs.Err()
}
