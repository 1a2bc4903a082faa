package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raids-lab/agencyos/dao/query"
	"github.com/raids-lab/agencyos/pkg/seed"
)

func migrateCmd() *cobra.Command {
	var rollback bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations to the configured database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db := query.GetDB()
			if rollback {
				if err := query.RollbackLast(db); err != nil {
					return fmt.Errorf("rollback: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "rolled back the last migration")
				return nil
			}
			if err := query.Migrate(db); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
			return nil
		},
	}
	cmd.Flags().BoolVar(&rollback, "rollback", false, "undo the most recent migration instead")
	return cmd
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed [fixture.yaml]",
		Short: "Upsert a YAML workspace fixture into the configured database",
		Example: `  agencyctl seed pkg/seed/testdata/agency.yaml
  AGENCYOS_CONFIG_PATH=./etc/debug-config.yaml agencyctl seed demo.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fixture, err := seed.LoadFile(args[0])
			if err != nil {
				return err
			}
			db := query.GetDB()
			if err := query.Migrate(db); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			counts, err := seed.Apply(cmd.Context(), db, fixture)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d spaces, %d folders, %d projects, %d tasks, %d profiles\n",
				counts.Spaces, counts.Folders, counts.Projects, counts.Tasks, counts.Profiles)
			return nil
		},
	}
}
