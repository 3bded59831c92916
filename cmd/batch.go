package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/buildsim/archetype-cli/internal/archetype"
	"github.com/buildsim/archetype-cli/internal/export"
)

var batchFlags struct {
	file   string
	outDir string
}

// batchFile is the YAML input: a list of building parameter sets.
type batchFile struct {
	Buildings []archetype.Params `yaml:"buildings"`
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Generate many buildings from a YAML definition file",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(batchFlags.file)
		if err != nil {
			return eris.Wrapf(err, "batch: read %s", batchFlags.file)
		}
		var bf batchFile
		if err := yaml.Unmarshal(data, &bf); err != nil {
			return eris.Wrapf(err, "batch: parse %s", batchFlags.file)
		}
		if len(bf.Buildings) == 0 {
			return eris.New("batch: no buildings defined")
		}

		gen, err := newGenerator(cmd.Context())
		if err != nil {
			return err
		}

		if err := os.MkdirAll(batchFlags.outDir, 0o755); err != nil {
			return eris.Wrapf(err, "batch: create output dir %s", batchFlags.outDir)
		}

		g, _ := errgroup.WithContext(cmd.Context())
		g.SetLimit(cfg.Batch.MaxConcurrent)

		for _, params := range bf.Buildings {
			params := params
			g.Go(func() error {
				building, err := gen.Generate(params)
				if err != nil {
					return eris.Wrapf(err, "batch: generate %q", params.Name)
				}
				path := filepath.Join(batchFlags.outDir, slugify(params.Name)+".json")
				if err := export.WriteJSON(building, path); err != nil {
					return err
				}
				zap.L().Info("batch: building written",
					zap.String("name", params.Name),
					zap.String("path", path),
				)
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return err
		}
		fmt.Printf("generated %d buildings into %s\n", len(bf.Buildings), batchFlags.outDir)
		return nil
	},
}

// slugify makes a building name safe as a file name.
func slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, s)
	return strings.Trim(s, "-")
}

func init() {
	f := batchCmd.Flags()
	f.StringVar(&batchFlags.file, "file", "", "YAML file with building definitions (required)")
	f.StringVar(&batchFlags.outDir, "out-dir", "out", "directory for JSON reports")
	_ = batchCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(batchCmd)
}
