package mcpadapter

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/kirillkom/fretboard-chords/internal/core/domain"
	"github.com/kirillkom/fretboard-chords/internal/core/ports"
)

const (
	serverName    = "fretboard-chords"
	serverVersion = "1.0.0"
)

// Tools exposes the recognition and note lookup use cases as MCP tools.
type Tools struct {
	recognizer ports.ChordRecognizer
	browser    ports.ChordBrowser
	notes      ports.NoteService
}

func NewTools(recognizer ports.ChordRecognizer, browser ports.ChordBrowser, notes ports.NoteService) *Tools {
	return &Tools{
		recognizer: recognizer,
		browser:    browser,
		notes:      notes,
	}
}

func (t *Tools) NewServer() *server.MCPServer {
	s := server.NewMCPServer(serverName, serverVersion,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	s.AddTool(mcp.NewTool("recognize_chords",
		mcp.WithDescription("Rank chord candidates for a set of note names such as C, E, G or Bb."),
		mcp.WithArray("notes",
			mcp.Required(),
			mcp.Description("Note names selected on the fretboard, at least two."),
			mcp.WithStringItems(),
		),
	), t.recognizeChords)

	s.AddTool(mcp.NewTool("note_info",
		mcp.WithDescription("Equal-temperament frequency of a note in octaves 0 to 7."),
		mcp.WithString("note", mcp.Required(), mcp.Description("Note name, flats allowed.")),
		mcp.WithNumber("octave", mcp.Description("Octave number, defaults to 4.")),
	), t.noteInfo)

	s.AddTool(mcp.NewTool("list_chords",
		mcp.WithDescription("List the chord table, optionally restricted to one category."),
		mcp.WithString("category", mcp.Description("major, minor, seventh, suspended, add, diminished, augmented, sixth or ninth.")),
	), t.listChords)

	return s
}

// ServeStdio blocks serving MCP over stdin/stdout.
func (t *Tools) ServeStdio() error {
	return server.ServeStdio(t.NewServer())
}

func (t *Tools) recognizeChords(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	notes, err := request.RequireStringSlice("notes")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	report, err := t.recognizer.Recognize(ctx, notes)
	if err != nil {
		return toolError("recognize_chords", err)
	}
	return jsonResult(report)
}

func (t *Tools) noteInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	note, err := request.RequireString("note")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	octave := request.GetInt("octave", domain.DefaultOctave)

	info, err := t.notes.NoteInfo(ctx, note, octave)
	if err != nil {
		return toolError("note_info", err)
	}
	return jsonResult(info)
}

func (t *Tools) listChords(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	chords, err := t.browser.ListChords(ctx, request.GetString("category", ""))
	if err != nil {
		return toolError("list_chords", err)
	}
	return jsonResult(chords)
}

// toolError reports domain failures to the model as tool errors. Anything
// else is a protocol-level failure.
func toolError(tool string, err error) (*mcp.CallToolResult, error) {
	if domain.IsKind(err, domain.ErrInvalidInput) ||
		domain.IsKind(err, domain.ErrNoteNotFound) ||
		domain.IsKind(err, domain.ErrChordNotFound) {
		return mcp.NewToolResultError(err.Error()), nil
	}
	slog.Error("mcp_tool_failed", "tool", tool, "error", err)
	return nil, fmt.Errorf("%s: %w", tool, err)
}

func jsonResult(payload any) (*mcp.CallToolResult, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode tool result: %w", err)
	}
	return mcp.NewToolResultText(string(raw)), nil
}
