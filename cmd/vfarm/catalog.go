package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akhilm2223/vertical-farmingg/pkg/catalog"
	catalogSvc "github.com/akhilm2223/vertical-farmingg/pkg/catalog/service"
	"github.com/akhilm2223/vertical-farmingg/pkg/ui"
)

func newCatalogCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect, export and import the crop and climate tables",
	}
	cmd.AddCommand(newCatalogExportCmd(a), newCatalogImportCmd(a), newCatalogValidateCmd(a))
	return cmd
}

func newCatalogExportCmd(a *app) *cobra.Command {
	var (
		out string
		cf  catalogFlags
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the catalog to an .xlsx workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.loadCatalog(&cf)
			if err != nil {
				return err
			}
			if err := catalog.WriteWorkbook(cat, out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d zones and %d crops to %s\n", len(cat.Zones()), len(cat.Crops()), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "catalog.xlsx", "output workbook")
	cf.register(cmd, "", "export the catalog stored in this SQLite file")
	return cmd
}

func newCatalogImportCmd(a *app) *cobra.Command {
	var cf catalogFlags
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Validate catalog files and replace the stored tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src := cf.sources()
			if src.Empty() {
				return errors.New("give --workbook or --zones with --crops")
			}
			return a.withStore(cf.db, func(s catalogSvc.CatalogService) error {
				cat, err := s.Import(src)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d zones and %d crops into %s\n", len(cat.Zones()), len(cat.Crops()), cf.db)
				return nil
			})
		},
	}
	cf.register(cmd, "vfarm.db", "SQLite file to import into")
	return cmd
}

func newCatalogValidateCmd(a *app) *cobra.Command {
	var cf catalogFlags
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check catalog files (or the stored catalog) for errors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.loadCatalog(&cf)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.StyleCrop.Render(
				fmt.Sprintf("Catalog OK: %d zones, %d crops", len(cat.Zones()), len(cat.Crops()))))
			return nil
		},
	}
	cf.register(cmd, "", "validate the catalog stored in this SQLite file")
	return cmd
}
