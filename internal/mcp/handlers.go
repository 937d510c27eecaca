package mcp

import (
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Dav1dde/pasteofexile-sub000/internal/config"
	"github.com/Dav1dde/pasteofexile-sub000/internal/errors"
	"github.com/Dav1dde/pasteofexile-sub000/internal/ops"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	db  *sql.DB
	cfg *config.Config
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(db *sql.DB, cfg *config.Config) *Handlers {
	return &Handlers{db: db, cfg: cfg}
}

// Request types for each tool

// CodeRequest represents the arguments for build_decode.
type CodeRequest struct {
	Code string `json:"code"`
}

// SummaryRequest represents the arguments for build_summary.
type SummaryRequest struct {
	Code    string `json:"code"`
	NoLevel bool   `json:"no_level,omitempty"`
}

// ItemParseRequest represents the arguments for item_parse.
type ItemParseRequest struct {
	Text string `json:"text"`
}

// NotesRenderRequest represents the arguments for notes_render.
type NotesRenderRequest struct {
	Code  string `json:"code,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// StoreRequest represents the arguments for paste_store.
type StoreRequest struct {
	Code  string `json:"code"`
	Title string `json:"title,omitempty"`
}

// FetchRequest represents the arguments for paste_fetch.
type FetchRequest struct {
	ID             string `json:"id"`
	IncludeDeleted bool   `json:"include_deleted,omitempty"`
	IncludeCode    *bool  `json:"include_code,omitempty"`
	Decode         bool   `json:"decode,omitempty"`
}

// ListRequest represents the arguments for paste_list.
type ListRequest struct {
	Class          string `json:"class,omitempty"`
	Limit          int    `json:"limit,omitempty"`
	Offset         int    `json:"offset,omitempty"`
	IncludeDeleted bool   `json:"include_deleted,omitempty"`
}

// DeleteRequest represents the arguments for paste_delete.
type DeleteRequest struct {
	ID string `json:"id"`
}

// PurgeRequest represents the arguments for paste_purge.
type PurgeRequest struct {
	OlderThanDays *int `json:"older_than_days,omitempty"`
}

// Handler implementations

// HandleDecode handles the build_decode tool call.
func (h *Handlers) HandleDecode(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[CodeRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Decode(h.cfg, ops.DecodeInput{Code: input.Code})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleSummary handles the build_summary tool call.
func (h *Handlers) HandleSummary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[SummaryRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Summarize(h.cfg, ops.SummarizeInput{
		Code:    input.Code,
		NoLevel: input.NoLevel,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleItemParse handles the item_parse tool call.
func (h *Handlers) HandleItemParse(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ItemParseRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.ParseItem(ops.ParseItemInput{Text: input.Text})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleNotesRender handles the notes_render tool call.
func (h *Handlers) HandleNotesRender(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[NotesRenderRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.RenderNotes(h.cfg, ops.RenderNotesInput{
		Code:  input.Code,
		Notes: input.Notes,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleStore handles the paste_store tool call.
func (h *Handlers) HandleStore(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[StoreRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Store(ctx, h.db, h.cfg, ops.StoreInput{
		Code:  input.Code,
		Title: input.Title,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleFetch handles the paste_fetch tool call.
func (h *Handlers) HandleFetch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[FetchRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Fetch(ctx, h.db, ops.FetchInput{
		ID:             input.ID,
		IncludeDeleted: input.IncludeDeleted,
		IncludeCode:    input.IncludeCode,
		Decode:         input.Decode,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleList handles the paste_list tool call.
func (h *Handlers) HandleList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ListRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.List(ctx, h.db, ops.ListInput{
		Class:          input.Class,
		Limit:          input.Limit,
		Offset:         input.Offset,
		IncludeDeleted: input.IncludeDeleted,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleDelete handles the paste_delete tool call.
func (h *Handlers) HandleDelete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[DeleteRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Delete(ctx, h.db, ops.DeleteInput{ID: input.ID})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandlePurge handles the paste_purge tool call.
func (h *Handlers) HandlePurge(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[PurgeRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Purge(ctx, h.db, ops.PurgeInput{OlderThanDays: input.OlderThanDays})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// Result helpers

// errorResult creates an MCP error result from any error.
// Uses IsError: true so MCP clients recognize failures properly.
// Internal error details are never exposed.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	var pErr *errors.PobError
	if stderrors.As(err, &pErr) {
		message := pErr.Message
		if err != error(pErr) && pErr.Code != errors.ErrInternal {
			// Keep the wrapper context, e.g. "notes: INVALID_REQUEST: ...".
			message = err.Error()
		}
		errorObj := map[string]any{
			"code":    pErr.Code,
			"message": message,
			"status":  pErr.Status,
		}
		if pErr.Code != errors.ErrInternal && pErr.Details != nil {
			errorObj["details"] = pErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    errors.ErrInternal,
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
