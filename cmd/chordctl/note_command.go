package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kirillkom/fretboard-chords/internal/core/domain"
)

func newNoteInfoCommand(ctx *commandContext) *cobra.Command {
	var octave int

	cmd := &cobra.Command{
		Use:   "note-info NOTE",
		Short: "Show the frequency of a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := ctx.ensureApp()
			if err != nil {
				return err
			}
			info, err := app.NoteUC.NoteInfo(cmd.Context(), args[0], octave)
			if err != nil {
				return err
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, info)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %.2f Hz\n", info.Note, *info.Frequency)
			return nil
		},
	}
	cmd.Flags().IntVar(&octave, "octave", domain.DefaultOctave, "Octave number (0-7)")
	return cmd
}
