package plaintext

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/kirillkom/fretboard-chords/internal/core/domain"
)

const maxNotesFileBytes = 16 << 10

// Opener is the read side of a file store.
type Opener interface {
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

// NotesReader loads note names from a text file: whitespace or comma
// separated, lines starting with # ignored.
type NotesReader struct {
	storage Opener
}

func NewNotesReader(storage Opener) *NotesReader {
	return &NotesReader{storage: storage}
}

func (r *NotesReader) ReadNotes(ctx context.Context, key string) ([]string, error) {
	reader, err := r.storage.Open(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("open notes file: %w", err)
	}
	defer reader.Close()

	raw, err := io.ReadAll(io.LimitReader(reader, maxNotesFileBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read notes file: %w", err)
	}
	if len(raw) > maxNotesFileBytes {
		return nil, domain.WrapError(domain.ErrInvalidInput, "read notes file", fmt.Errorf("%s exceeds %d bytes", key, maxNotesFileBytes))
	}
	if !utf8.Valid(raw) {
		return nil, domain.WrapError(domain.ErrInvalidInput, "read notes file", fmt.Errorf("%s is not utf-8 text", key))
	}

	return ParseNotes(string(raw))
}

func ParseNotes(text string) ([]string, error) {
	var notes []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\r'
		})
		notes = append(notes, fields...)
	}
	if len(notes) == 0 {
		return nil, domain.WrapError(domain.ErrInvalidInput, "parse notes", errors.New("no notes found"))
	}
	return notes, nil
}
