package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/akhilm2223/vertical-farmingg/database"
	"github.com/akhilm2223/vertical-farmingg/pkg/catalog"
	catalogRepoImp "github.com/akhilm2223/vertical-farmingg/pkg/catalog/repositoryImp"
	catalogSvc "github.com/akhilm2223/vertical-farmingg/pkg/catalog/service"
	catalogSvcImp "github.com/akhilm2223/vertical-farmingg/pkg/catalog/serviceImp"
	"github.com/akhilm2223/vertical-farmingg/pkg/ui"
)

// app carries what the commands share. Tests swap the prompter.
type app struct {
	verbose  bool
	log      *zap.Logger
	prompter ui.Prompter
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "vfarm",
		Short: "Plan crops and resources for a small indoor vertical farm",
		Long: `vfarm recommends crops for an indoor vertical farm from the local climate,
the light source and the space available, and works out seeds, water,
light and spacing for each crop.

Run "vfarm plan" to start an interactive session.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.log != nil {
				return nil
			}
			// CLI output goes to stdout; logs stay quiet unless asked for
			config := zap.NewProductionConfig()
			config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			log, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.log = log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newPlanCmd(a), newCatalogCmd(a))
	return root
}

// catalogFlags selects where a command reads the catalog from.
type catalogFlags struct {
	db       string
	workbook string
	zones    string
	crops    string
}

func (f *catalogFlags) register(cmd *cobra.Command, dbDefault, dbHelp string) {
	cmd.Flags().StringVar(&f.db, "db", dbDefault, dbHelp)
	cmd.Flags().StringVar(&f.workbook, "workbook", "", "catalog workbook (.xlsx) with Zones and Crops sheets")
	cmd.Flags().StringVar(&f.zones, "zones", "", "zones table (.csv)")
	cmd.Flags().StringVar(&f.crops, "crops", "", "crops table (.csv)")
	cmd.MarkFlagsMutuallyExclusive("workbook", "zones")
	cmd.MarkFlagsMutuallyExclusive("workbook", "crops")
	cmd.MarkFlagsRequiredTogether("zones", "crops")
}

func (f *catalogFlags) sources() catalogSvc.Sources {
	return catalogSvc.Sources{Workbook: f.workbook, ZonesCSV: f.zones, CropsCSV: f.crops}
}

// withStore opens the SQLite catalog store for the duration of fn.
func (a *app) withStore(path string, fn func(catalogSvc.CatalogService) error) error {
	db, err := database.OpenSQLite(path, a.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = database.Close(db) }()
	return fn(catalogSvcImp.NewCatalogService(catalogRepoImp.New(db), a.log))
}

// loadCatalog resolves the catalog for read-only commands: files first,
// then the store, then the built-in tables.
func (a *app) loadCatalog(f *catalogFlags) (*catalog.Catalog, error) {
	src := f.sources()
	if !src.Empty() || f.db == "" {
		return catalogSvcImp.Read(src)
	}
	var cat *catalog.Catalog
	err := a.withStore(f.db, func(s catalogSvc.CatalogService) error {
		var err error
		cat, err = s.Bootstrap(catalogSvc.Sources{})
		return err
	})
	return cat, err
}
