package main

import (
	"fmt"
	"food-rescue-dashboard/internal/adapters/repositories"
	"food-rescue-dashboard/internal/adapters/workbook"
	"food-rescue-dashboard/internal/config"
	"food-rescue-dashboard/internal/domain"
	"food-rescue-dashboard/internal/services"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newImportCmd(cfg *config.Config) *cobra.Command {
	var schemaName string

	cmd := &cobra.Command{
		Use:   "import --schema <Transaction|Package|Destination> FILE",
		Short: "Import one spreadsheet export through the upload pipeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := domain.ParseSchema(schemaName)
			if err != nil {
				return err
			}

			aliases := services.DefaultFieldAliases()
			if path := cfg.Import.HeaderAliasesPath; path != "" {
				if aliases, err = services.LoadFieldAliases(path); err != nil {
					return err
				}
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("import: open %q: %w", args[0], err)
			}
			defer f.Close()

			conn, err := openDB(cmd.Context(), cfg.Database)
			if err != nil {
				return err
			}
			defer conn.Close()

			res, err := services.ImportFile(cmd.Context(), services.ImportRequest{
				Schema:   schema,
				FileName: filepath.Base(args[0]),
				File:     f,
			}, workbook.NewReader(cfg.Import.MaxUploadBytes), repositories.NewSQLStore(conn), aliases)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "import %s: %s rows read=%d valid=%d rejected=%d inserted=%d\n",
				res.ImportID, schema, res.Report.RowsRead, res.Report.RowsValid, len(res.Report.Rejections), res.Inserted)
			for _, rej := range res.Report.Rejections {
				fmt.Fprintf(out, "  row %d: %s\n", rej.Row, rej.Reason)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&schemaName, "schema", "", "sheet schema: Transaction, Package or Destination")
	_ = cmd.MarkFlagRequired("schema")
	return cmd
}
