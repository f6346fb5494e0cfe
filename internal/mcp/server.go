package mcp

import (
	"context"
	"fmt"
	"strings"

	"cleverpad/internal/auth"
	"cleverpad/internal/notes"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Server exposes note tools over MCP. Tools operate on guest partitions
// only: possession of the session id is the authorization, the same as the
// X-Session-Id header on the HTTP surface. Account partitions are not
// reachable here.
type Server struct {
	notes *notes.Service
}

func NewMCPServer(notesSvc *notes.Service) *Server {
	return &Server{notes: notesSvc}
}

func (s *Server) listNotesHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, err := request.RequireString("session_id")
	if err != nil {
		return mcp.NewToolResultError("session_id is required"), nil
	}

	list, err := s.notes.List(auth.GuestIdentity(sessionID))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("database error: %v", err)), nil
	}

	if len(list) == 0 {
		return mcp.NewToolResultText("No notes found for this session."), nil
	}

	var noteStrings []string
	for _, n := range list {
		noteStrings = append(noteStrings, fmt.Sprintf("[%d] %s: %s", n.ID, n.Title, n.Content))
	}

	return mcp.NewToolResultText(fmt.Sprintf("Found %d notes:\n%s", len(list), strings.Join(noteStrings, "\n"))), nil
}

func (s *Server) createNoteHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, err := request.RequireString("session_id")
	if err != nil {
		return mcp.NewToolResultError("session_id is required"), nil
	}
	title := request.GetString("title", "")
	content := request.GetString("content", "")

	note, err := s.notes.Create(auth.GuestIdentity(sessionID), title, content)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("database error: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Created note %d: %s", note.ID, note.Title)), nil
}

func NewServer(notesSvc *notes.Service) *server.StreamableHTTPServer {
	s := NewMCPServer(notesSvc)

	mcpServer := server.NewMCPServer("CleverPad", "1.0.0")

	listTool := mcp.NewTool("list_notes",
		mcp.WithDescription("List the notes stored under a guest session, newest first."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("The guest session identifier that owns the notes")),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	)
	createTool := mcp.NewTool("create_note",
		mcp.WithDescription("Create a note under a guest session."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("The guest session identifier to attach the note to")),
		mcp.WithString("title", mcp.Description("Note title; defaults to Untitled")),
		mcp.WithString("content", mcp.Description("Note content")),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(false),
	)

	mcpServer.AddTool(listTool, s.listNotesHandler)
	mcpServer.AddTool(createTool, s.createNoteHandler)

	return server.NewStreamableHTTPServer(mcpServer, server.WithStateLess(true))
}
