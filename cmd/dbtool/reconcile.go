package main

import (
	"encoding/json"
	"food-rescue-dashboard/internal/adapters/repositories"
	"food-rescue-dashboard/internal/api/dto"
	"food-rescue-dashboard/internal/config"
	"food-rescue-dashboard/internal/services"

	"github.com/spf13/cobra"
)

func newReconcileCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile",
		Short: "Print the household reconciliation as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conn, err := openDB(cmd.Context(), cfg.Database)
			if err != nil {
				return err
			}
			defer conn.Close()

			rec, err := services.Reconcile(cmd.Context(), repositories.NewSQLStore(conn))
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(dto.NewReconciliationResponse(*rec))
		},
	}
}
