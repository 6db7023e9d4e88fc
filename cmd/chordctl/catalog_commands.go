package main

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kirillkom/fretboard-chords/internal/infrastructure/export/xlsx"
	"github.com/kirillkom/fretboard-chords/internal/infrastructure/storage/localfs"
)

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse and export the chord table",
	}
	cmd.AddCommand(newCatalogListCommand(ctx))
	cmd.AddCommand(newCatalogExportCommand(ctx))
	return cmd
}

func newCatalogListCommand(ctx *commandContext) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List chords, optionally for one category",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := ctx.ensureApp()
			if err != nil {
				return err
			}
			defs, err := app.CatalogUC.ListChords(cmd.Context(), category)
			if err != nil {
				return err
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, defs)
			}

			rows := make([][]string, 0, len(defs))
			for _, def := range defs {
				rows = append(rows, []string{def.ID, def.Label, string(def.Category), joinPitches(def.Notes)})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(out, []string{"Chord", "Type", "Category", "Notes"}, rows, nil))
			return nil
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "Category filter (major, minor, seventh, ...)")
	return cmd
}

func newCatalogExportCommand(ctx *commandContext) *cobra.Command {
	var outPath string
	var category string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the chord table to an .xlsx workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !strings.HasSuffix(strings.ToLower(outPath), ".xlsx") {
				return fmt.Errorf("--out must name an .xlsx file, got %q", outPath)
			}
			app, err := ctx.ensureApp()
			if err != nil {
				return err
			}
			defs, err := app.CatalogUC.ListChords(cmd.Context(), category)
			if err != nil {
				return err
			}
			var workbook bytes.Buffer
			if err := xlsx.WriteCatalog(&workbook, defs); err != nil {
				return err
			}
			store, err := localfs.New(filepath.Dir(outPath))
			if err != nil {
				return err
			}
			if err := store.Save(cmd.Context(), filepath.Base(outPath), &workbook); err != nil {
				return fmt.Errorf("export catalog: %w", err)
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, map[string]any{"path": outPath, "chords": len(defs)})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d chords to %s\n", len(defs), outPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&outPath, "out", "chords.xlsx", "Destination workbook")
	cmd.Flags().StringVar(&category, "category", "", "Category filter")
	return cmd
}
