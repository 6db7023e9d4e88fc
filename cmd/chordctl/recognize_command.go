package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kirillkom/fretboard-chords/internal/core/domain"
	"github.com/kirillkom/fretboard-chords/internal/infrastructure/extractor/plaintext"
	"github.com/kirillkom/fretboard-chords/internal/infrastructure/storage/localfs"
)

func newRecognizeCommand(ctx *commandContext) *cobra.Command {
	var notesFile string

	cmd := &cobra.Command{
		Use:     "recognize [NOTE...]",
		Short:   "Rank chord candidates for a set of notes",
		Example: "  chordctl recognize A C E G\n  chordctl recognize Bb D F --json\n  chordctl recognize --file shape.txt",
		RunE: func(cmd *cobra.Command, args []string) error {
			notes := splitNotes(args)
			if notesFile != "" {
				fromFile, err := readNotesFile(cmd, notesFile)
				if err != nil {
					return err
				}
				notes = append(notes, fromFile...)
			}
			if len(notes) == 0 {
				return fmt.Errorf("no notes given; pass NOTE arguments or --file")
			}

			app, err := ctx.ensureApp()
			if err != nil {
				return err
			}
			report, err := app.RecognizeUC.Recognize(cmd.Context(), notes)
			if err != nil {
				return err
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, report)
			}
			return printReport(cmd, report)
		},
	}
	cmd.Flags().StringVar(&notesFile, "file", "", "Read notes from a text file")
	return cmd
}

// readNotesFile reads notes through a store rooted at the working directory;
// paths outside it are rejected.
func readNotesFile(cmd *cobra.Command, path string) ([]string, error) {
	key, err := workingDirKey(path)
	if err != nil {
		return nil, err
	}
	store := localfs.NewReadOnly(".")
	return plaintext.NewNotesReader(store).ReadNotes(cmd.Context(), key)
}

func workingDirKey(path string) (string, error) {
	if !filepath.IsAbs(path) {
		return path, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}
	rel, err := filepath.Rel(wd, path)
	if err != nil {
		return "", fmt.Errorf("notes file %q is outside the working directory", path)
	}
	return rel, nil
}

// splitNotes accepts both "A C E" and "A,C,E".
func splitNotes(args []string) []string {
	notes := make([]string, 0, len(args))
	for _, arg := range args {
		for _, part := range strings.Split(arg, ",") {
			if part = strings.TrimSpace(part); part != "" {
				notes = append(notes, part)
			}
		}
	}
	return notes
}

func printReport(cmd *cobra.Command, report *domain.RecognitionReport) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Notes: %s (%d selected)\n", strings.Join(report.UniqueNotes, " "), report.TotalNotes)
	if len(report.RecognizedChords) == 0 {
		fmt.Fprintln(out, "No matching chords.")
		return nil
	}

	rows := make([][]string, 0, len(report.RecognizedChords))
	for _, match := range report.RecognizedChords {
		exact := ""
		if match.IsExactMatch {
			exact = "yes"
		}
		rows = append(rows, []string{
			match.ChordID,
			match.Label,
			strconv.Itoa(match.Confidence) + "%",
			exact,
			joinPitches(match.Notes),
		})
	}
	fmt.Fprintln(out, renderTable(out,
		[]string{"Chord", "Type", "Confidence", "Exact", "Notes"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft, alignLeft},
	))
	return nil
}

func joinPitches(notes []domain.PitchClass) string {
	parts := make([]string, 0, len(notes))
	for _, note := range notes {
		parts = append(parts, string(note))
	}
	return strings.Join(parts, " ")
}
