package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/kirillkom/fretboard-chords/internal/core/domain"
	"github.com/kirillkom/fretboard-chords/internal/infrastructure/export/xlsx"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("CONFIG_FILE", "")
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRecognizePrintsTable(t *testing.T) {
	out, _, err := runCLI(t, "recognize", "A", "C", "E")
	if err != nil {
		t.Fatalf("recognize: %v", err)
	}
	if !strings.Contains(out, "Notes: A C E (3 selected)") {
		t.Fatalf("missing notes line:\n%s", out)
	}
	if !strings.Contains(out, "Am") || !strings.Contains(out, "100%") {
		t.Fatalf("expected Am at 100%% in output:\n%s", out)
	}
	// Buffers are not terminals, so the plain ASCII style is used.
	if strings.Contains(out, "╭") {
		t.Fatalf("expected plain table style for non-terminal output:\n%s", out)
	}
}

func TestRecognizeJSONAcceptsCommaSeparatedNotes(t *testing.T) {
	out, _, err := runCLI(t, "--json", "recognize", "Bb,D", "F")
	if err != nil {
		t.Fatalf("recognize: %v", err)
	}
	var report domain.RecognitionReport
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("decode json: %v\n%s", err, out)
	}
	if report.TotalNotes != 3 || report.RecognizedChords[0].ChordID != "A#" {
		t.Fatalf("unexpected report: %+v", report)
	}
}

func TestRecognizeReadsNotesFile(t *testing.T) {
	t.Chdir(t.TempDir())
	if err := os.WriteFile("shape.txt", []byte("# open G7\nG B\nD, F\n"), 0o644); err != nil {
		t.Fatalf("write notes file: %v", err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}

	for _, path := range []string{"shape.txt", filepath.Join(wd, "shape.txt")} {
		out, _, err := runCLI(t, "--json", "recognize", "--file", path)
		if err != nil {
			t.Fatalf("recognize --file %s: %v", path, err)
		}
		var report domain.RecognitionReport
		if err := json.Unmarshal([]byte(out), &report); err != nil {
			t.Fatalf("decode json: %v", err)
		}
		if report.RecognizedChords[0].ChordID != "G7" || !report.RecognizedChords[0].IsExactMatch {
			t.Fatalf("expected exact G7 for %s, got %+v", path, report.RecognizedChords[0])
		}
	}
}

func TestRecognizeMissingNotesFileCreatesNothing(t *testing.T) {
	root := t.TempDir()
	t.Chdir(root)

	_, _, err := runCLI(t, "recognize", "--file", filepath.Join("no", "such", "dir", "shape.txt"))
	if err == nil {
		t.Fatalf("expected error for missing notes file")
	}
	if _, err := os.Stat(filepath.Join(root, "no")); !os.IsNotExist(err) {
		t.Fatalf("expected no directories to be created, stat error = %v", err)
	}
}

func TestRecognizeRejectsNotesFileOutsideWorkingDir(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "x.txt"), []byte("A C E\n"), 0o644); err != nil {
		t.Fatalf("write notes file: %v", err)
	}
	inner := filepath.Join(root, "inner")
	if err := os.Mkdir(inner, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	t.Chdir(inner)

	for _, path := range []string{filepath.Join("..", "x.txt"), filepath.Join(root, "x.txt")} {
		_, _, err := runCLI(t, "recognize", "--file", path)
		if err == nil || !strings.Contains(err.Error(), "invalid storage key") {
			t.Fatalf("expected %s to be rejected, got %v", path, err)
		}
	}
}

func TestRecognizeRequiresNotes(t *testing.T) {
	if _, _, err := runCLI(t, "recognize"); err == nil {
		t.Fatalf("expected error without notes")
	}
}

func TestRecognizeRejectsSingleNote(t *testing.T) {
	_, _, err := runCLI(t, "recognize", "A")
	if err == nil || !strings.Contains(err.Error(), "at least 2 notes") {
		t.Fatalf("expected too-few-notes error, got %v", err)
	}
}

func TestNoteInfoCommand(t *testing.T) {
	out, _, err := runCLI(t, "note-info", "A")
	if err != nil {
		t.Fatalf("note-info: %v", err)
	}
	if strings.TrimSpace(out) != "A4  440.00 Hz" {
		t.Fatalf("unexpected output %q", out)
	}

	if _, _, err := runCLI(t, "note-info", "C", "--octave", "8"); err == nil {
		t.Fatalf("expected error for octave 8")
	}
}

func TestCatalogListFiltersByCategory(t *testing.T) {
	out, _, err := runCLI(t, "--json", "catalog", "list", "--category", "add")
	if err != nil {
		t.Fatalf("catalog list: %v", err)
	}
	var defs []domain.ChordDefinition
	if err := json.Unmarshal([]byte(out), &defs); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	if len(defs) != 3 {
		t.Fatalf("expected 3 add chords, got %d", len(defs))
	}

	if _, _, err := runCLI(t, "catalog", "list", "--category", "lydian"); err == nil {
		t.Fatalf("expected error for unknown category")
	}
}

func TestCatalogExportWritesWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chords.xlsx")
	out, _, err := runCLI(t, "catalog", "export", "--out", path)
	if err != nil {
		t.Fatalf("catalog export: %v", err)
	}
	if !strings.Contains(out, "Exported 117 chords") {
		t.Fatalf("unexpected output %q", out)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()
	rows, err := f.GetRows(xlsx.SheetName)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 118 {
		t.Fatalf("expected 118 rows, got %d", len(rows))
	}
}

func TestCatalogExportRequiresXLSXPath(t *testing.T) {
	if _, _, err := runCLI(t, "catalog", "export", "--out", "chords.csv"); err == nil {
		t.Fatalf("expected error for non-xlsx destination")
	}
}

func TestSplitNotes(t *testing.T) {
	got := splitNotes([]string{"A, C", "E", ",", " G "})
	if strings.Join(got, "|") != "A|C|E|G" {
		t.Fatalf("unexpected notes %v", got)
	}
}
