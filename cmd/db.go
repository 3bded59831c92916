package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/buildsim/archetype-cli/internal/store"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Inspect and convert the type-element database",
}

var dbValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load the configured database and check referential integrity",
	RunE: func(cmd *cobra.Command, args []string) error {
		bindings, err := openBindings(cmd.Context())
		if err != nil {
			return err
		}
		if err := bindings.Validate(); err != nil {
			return err
		}
		fmt.Printf("ok: %d records, %d materials\n", bindings.NumRecords(), bindings.NumMaterials())
		return nil
	},
}

var dbImportFlags struct {
	target string
}

var dbImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import the configured database into a SQLite file",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		bindings, err := openBindings(ctx)
		if err != nil {
			return err
		}
		if err := bindings.Validate(); err != nil {
			return eris.Wrap(err, "db: refusing to import invalid database")
		}

		dst, err := store.NewSQLite(dbImportFlags.target)
		if err != nil {
			return err
		}
		defer dst.Close() //nolint:errcheck

		if err := dst.Migrate(ctx); err != nil {
			return err
		}
		if err := dst.Import(ctx, bindings); err != nil {
			return err
		}

		zap.L().Info("db: import complete",
			zap.String("target", dbImportFlags.target),
			zap.Int("records", bindings.NumRecords()),
			zap.Int("materials", bindings.NumMaterials()),
		)
		fmt.Printf("imported %d records and %d materials into %s\n",
			bindings.NumRecords(), bindings.NumMaterials(), dbImportFlags.target)
		return nil
	},
}

func init() {
	dbImportCmd.Flags().StringVar(&dbImportFlags.target, "target", "type_elements.db", "SQLite file to write")

	dbCmd.AddCommand(dbValidateCmd)
	dbCmd.AddCommand(dbImportCmd)
	rootCmd.AddCommand(dbCmd)
}
