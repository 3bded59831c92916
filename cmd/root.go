package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/buildsim/archetype-cli/internal/archetype"
	"github.com/buildsim/archetype-cli/internal/config"
	"github.com/buildsim/archetype-cli/internal/store"
	"github.com/buildsim/archetype-cli/internal/typeelement"
	"github.com/buildsim/archetype-cli/internal/useconditions"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "archetype-cli",
	Short: "Parametric building-envelope archetype generator",
	Long:  "Generates fully parameterized building-envelope models from archetype inputs, resolving construction assemblies from a normative type-element database, for downstream thermal simulation.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openBindings loads the configured type-element database into memory.
func openBindings(ctx context.Context) (*typeelement.Bindings, error) {
	st, err := store.Open(ctx, storeOptions())
	if err != nil {
		return nil, err
	}
	defer st.Close() //nolint:errcheck

	return st.Load(ctx)
}

func storeOptions() store.Options {
	return store.Options{
		Driver:        cfg.Database.Driver,
		DSN:           cfg.Database.DSN,
		ElementsPath:  cfg.Database.ElementsPath,
		MaterialsPath: cfg.Database.MaterialsPath,
	}
}

// newGenerator wires the database and use-condition profiles into a
// generator.
func newGenerator(ctx context.Context) (*archetype.Generator, error) {
	bindings, err := openBindings(ctx)
	if err != nil {
		return nil, err
	}

	profiles := useconditions.NewRegistry()
	if path := cfg.Database.UseConditionsPath; path != "" {
		if err := profiles.LoadFile(path); err != nil {
			return nil, err
		}
	}

	return archetype.NewGenerator(bindings, profiles), nil
}
