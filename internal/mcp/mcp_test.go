package mcp

import (
	"bytes"
	"compress/zlib"
	"context"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Dav1dde/pasteofexile-sub000/internal/config"
	"github.com/Dav1dde/pasteofexile-sub000/internal/db"
	"github.com/Dav1dde/pasteofexile-sub000/internal/errors"
)

// testSetup creates a temporary database and config for testing.
func testSetup(t *testing.T) (*sql.DB, *config.Config, func()) {
	t.Helper()

	database, err := db.Init(t.TempDir())
	if err != nil {
		t.Fatalf("failed to init db: %v", err)
	}

	cleanup := func() {
		database.Close()
	}

	return database, config.DefaultConfig(), cleanup
}

// makeRequest creates a CallToolRequest with the given arguments.
func makeRequest(args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: args,
		},
	}
}

// exportCode compresses a build fixture into an export code.
func exportCode(t *testing.T, name string) string {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join("..", "pob", "testdata", name))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}

	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(raw); err != nil {
		t.Fatalf("compress fixture: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("compress fixture: %v", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf.Bytes())
}

// storePaste stores a fixture through the handler and returns its ID.
func storePaste(t *testing.T, h *Handlers, fixture string) string {
	t.Helper()
	result, err := h.HandleStore(context.Background(), makeRequest(map[string]any{
		"code": exportCode(t, fixture),
	}))
	if err != nil {
		t.Fatalf("store handler returned error: %v", err)
	}
	return parseOutput(t, result)["id"].(string)
}

func TestHandleDecode(t *testing.T) {
	database, cfg, cleanup := testSetup(t)
	defer cleanup()

	h := NewHandlers(database, cfg)
	ctx := context.Background()

	tests := []struct {
		name      string
		args      map[string]any
		wantError bool
		errorCode string
	}{
		{
			name: "modern build",
			args: map[string]any{"code": exportCode(t, "modern.xml")},
		},
		{
			name: "legacy build",
			args: map[string]any{"code": exportCode(t, "legacy.xml")},
		},
		{
			name:      "missing code",
			args:      map[string]any{},
			wantError: true,
			errorCode: "INVALID_REQUEST",
		},
		{
			name:      "not base64",
			args:      map[string]any{"code": "%%%"},
			wantError: true,
			errorCode: "BASE64_DECODE",
		},
		{
			name:      "not deflate",
			args:      map[string]any{"code": base64.RawURLEncoding.EncodeToString([]byte("plain text"))},
			wantError: true,
			errorCode: "DEFLATE",
		},
		{
			name:      "wrong argument type",
			args:      map[string]any{"code": 42},
			wantError: true,
			errorCode: "INVALID_REQUEST",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := h.HandleDecode(ctx, makeRequest(tt.args))
			if err != nil {
				t.Fatalf("handler returned error: %v", err)
			}

			if tt.wantError {
				if !result.IsError {
					t.Errorf("expected error result, got success")
				}
				if tt.errorCode != "" {
					assertErrorCode(t, result, tt.errorCode)
				}
			} else if result.IsError {
				t.Errorf("expected success, got error: %v", extractErrorMessage(result))
			}
		})
	}
}

func TestHandleDecode_Output(t *testing.T) {
	database, cfg, cleanup := testSetup(t)
	defer cleanup()

	h := NewHandlers(database, cfg)
	result, err := h.HandleDecode(context.Background(), makeRequest(map[string]any{
		"code": exportCode(t, "modern.xml"),
	}))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	output := parseOutput(t, result)
	if output["class_name"] != "Witch" {
		t.Errorf("class_name = %v, want Witch", output["class_name"])
	}
	summary := output["summary"].(map[string]any)
	if summary["title"] != "Level 95 MoM Summon Skeletons Necromancer" {
		t.Errorf("title = %v", summary["title"])
	}
}

func TestHandleSummary(t *testing.T) {
	database, cfg, cleanup := testSetup(t)
	defer cleanup()

	h := NewHandlers(database, cfg)
	result, err := h.HandleSummary(context.Background(), makeRequest(map[string]any{
		"code":     exportCode(t, "modern.xml"),
		"no_level": true,
	}))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	output := parseOutput(t, result)
	if output["title"] != "MoM Summon Skeletons Necromancer" {
		t.Errorf("title = %v", output["title"])
	}
	lines, ok := output["lines"].([]any)
	if !ok || len(lines) == 0 {
		t.Fatalf("expected summary lines, got %v", output["lines"])
	}
}

func TestHandleItemParse(t *testing.T) {
	database, cfg, cleanup := testSetup(t)
	defer cleanup()

	h := NewHandlers(database, cfg)
	ctx := context.Background()

	result, err := h.HandleItemParse(ctx, makeRequest(map[string]any{
		"text": "Rarity: RARE\nDoom Knuckle\nTitan Gauntlets\nItem Level: 86\n+90 to maximum Life",
	}))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	output := parseOutput(t, result)
	if output["name"] != "Doom Knuckle" || output["base"] != "Titan Gauntlets" {
		t.Errorf("name/base = %v/%v", output["name"], output["base"])
	}

	result, err = h.HandleItemParse(ctx, makeRequest(map[string]any{"text": "Titan Gauntlets"}))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	assertErrorCode(t, result, "INVALID_ITEM")
}

func TestHandleNotesRender(t *testing.T) {
	database, cfg, cleanup := testSetup(t)
	defer cleanup()

	h := NewHandlers(database, cfg)
	ctx := context.Background()

	result, err := h.HandleNotesRender(ctx, makeRequest(map[string]any{
		"notes": "^1red^7 <script>",
	}))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	output := parseOutput(t, result)
	if html := output["html"].(string); strings.Contains(html, "<script>") {
		t.Errorf("html was not escaped: %s", html)
	}

	result, err = h.HandleNotesRender(ctx, makeRequest(map[string]any{
		"notes": "a",
		"code":  exportCode(t, "modern.xml"),
	}))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	assertErrorCode(t, result, "INVALID_REQUEST")
}

func TestHandleStore(t *testing.T) {
	database, cfg, cleanup := testSetup(t)
	defer cleanup()

	h := NewHandlers(database, cfg)
	ctx := context.Background()

	tests := []struct {
		name      string
		args      map[string]any
		wantError bool
		errorCode string
	}{
		{
			name: "store valid build",
			args: map[string]any{"code": exportCode(t, "modern.xml")},
		},
		{
			name: "store with title",
			args: map[string]any{"code": exportCode(t, "legacy.xml"), "title": "cleave"},
		},
		{
			name:      "store without code",
			args:      map[string]any{"title": "nothing"},
			wantError: true,
			errorCode: "INVALID_REQUEST",
		},
		{
			name:      "store broken code",
			args:      map[string]any{"code": "eNr"},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := h.HandleStore(ctx, makeRequest(tt.args))
			if err != nil {
				t.Fatalf("handler returned error: %v", err)
			}

			if tt.wantError {
				if !result.IsError {
					t.Errorf("expected error result, got success")
				}
				if tt.errorCode != "" {
					assertErrorCode(t, result, tt.errorCode)
				}
			} else if result.IsError {
				t.Errorf("expected success, got error: %v", extractErrorMessage(result))
			}
		})
	}
}

func TestHandleStore_TooLarge(t *testing.T) {
	database, cfg, cleanup := testSetup(t)
	defer cleanup()

	cfg.MaxBuildBytes = 10
	h := NewHandlers(database, cfg)
	result, err := h.HandleStore(context.Background(), makeRequest(map[string]any{
		"code": exportCode(t, "legacy.xml"),
	}))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	assertErrorCode(t, result, "BUILD_TOO_LARGE")
}

func TestHandleFetch(t *testing.T) {
	database, cfg, cleanup := testSetup(t)
	defer cleanup()

	h := NewHandlers(database, cfg)
	ctx := context.Background()
	id := storePaste(t, h, "modern.xml")

	result, err := h.HandleFetch(ctx, makeRequest(map[string]any{
		"id":           id,
		"include_code": false,
		"decode":       true,
	}))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	output := parseOutput(t, result)
	if _, ok := output["code"]; ok {
		t.Error("code should be omitted when include_code is false")
	}
	if _, ok := output["build"]; !ok {
		t.Error("expected decoded build")
	}
	if output["class_name"] != "Witch" {
		t.Errorf("class_name = %v, want Witch", output["class_name"])
	}

	result, err = h.HandleFetch(ctx, makeRequest(map[string]any{"id": "missing"}))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	assertErrorCode(t, result, "NOT_FOUND")
}

func TestHandleList(t *testing.T) {
	database, cfg, cleanup := testSetup(t)
	defer cleanup()

	h := NewHandlers(database, cfg)
	ctx := context.Background()
	storePaste(t, h, "modern.xml")
	storePaste(t, h, "legacy.xml")

	result, err := h.HandleList(ctx, makeRequest(map[string]any{"class": "duelist", "limit": 10}))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	output := parseOutput(t, result)
	items := output["items"].([]any)
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
	if class := items[0].(map[string]any)["class_name"]; class != "Duelist" {
		t.Errorf("class_name = %v, want Duelist", class)
	}

	result, err = h.HandleList(ctx, makeRequest(map[string]any{"class": "Exile"}))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	assertErrorCode(t, result, "INVALID_REQUEST")
}

func TestHandleDeleteAndPurge(t *testing.T) {
	database, cfg, cleanup := testSetup(t)
	defer cleanup()

	h := NewHandlers(database, cfg)
	ctx := context.Background()
	id := storePaste(t, h, "legacy.xml")

	deleteResult, err := h.HandleDelete(ctx, makeRequest(map[string]any{"id": id}))
	if err != nil {
		t.Fatalf("delete handler returned error: %v", err)
	}
	if output := parseOutput(t, deleteResult); output["deleted"] != true {
		t.Errorf("deleted = %v, want true", output["deleted"])
	}

	purgeResult, err := h.HandlePurge(ctx, makeRequest(map[string]any{}))
	if err != nil {
		t.Fatalf("purge handler returned error: %v", err)
	}
	if output := parseOutput(t, purgeResult); output["purged"] != float64(1) {
		t.Errorf("purged = %v, want 1", output["purged"])
	}

	// Verify paste is gone even with include_deleted
	fetchResult, _ := h.HandleFetch(ctx, makeRequest(map[string]any{
		"id":              id,
		"include_deleted": true,
	}))
	if !fetchResult.IsError {
		t.Error("purged paste should not be found")
	}

	purgeResult, err = h.HandlePurge(ctx, makeRequest(map[string]any{"older_than_days": -3}))
	if err != nil {
		t.Fatalf("purge handler returned error: %v", err)
	}
	assertErrorCode(t, purgeResult, "INVALID_REQUEST")
}

func TestServerRegistration(t *testing.T) {
	database, cfg, cleanup := testSetup(t)
	defer cleanup()

	s := NewServer(database, cfg, "test")
	tools := s.ListTools()

	expectedTools := []string{
		"build_decode",
		"build_summary",
		"item_parse",
		"notes_render",
		"paste_store",
		"paste_fetch",
		"paste_list",
		"paste_delete",
		"paste_purge",
	}

	if len(tools) != len(expectedTools) {
		t.Errorf("registered tool count = %d, want %d", len(tools), len(expectedTools))
	}

	for _, name := range expectedTools {
		if _, ok := tools[name]; !ok {
			t.Errorf("missing registered tool: %s", name)
		}
	}
}

func TestServerRegistration_WithDisabledTools(t *testing.T) {
	database, cfg, cleanup := testSetup(t)
	defer cleanup()

	cfg.DisabledTools = []string{"paste_purge", "paste_delete", "paste_purge"}
	s := NewServer(database, cfg, "test")
	tools := s.ListTools()

	// 9 - 2 disabled, duplicates ignored
	if len(tools) != 7 {
		t.Errorf("registered tool count = %d, want 7", len(tools))
	}
	for _, name := range []string{"paste_purge", "paste_delete"} {
		if _, ok := tools[name]; ok {
			t.Errorf("disabled tool %q should not be registered", name)
		}
	}
}

func TestServerRegistration_WithDisabledTypes(t *testing.T) {
	database, cfg, cleanup := testSetup(t)
	defer cleanup()

	cfg.DisabledTypes = []string{"paste"}
	s := NewServer(database, cfg, "test")
	tools := s.ListTools()

	if len(tools) != 4 {
		t.Errorf("registered tool count = %d, want 4", len(tools))
	}
	for name := range tools {
		if GetTypeForTool(name) == "paste" {
			t.Errorf("tool %q of a disabled type should not be registered", name)
		}
	}
}

func TestServerRegistration_AllToolsDisabled(t *testing.T) {
	database, cfg, cleanup := testSetup(t)
	defer cleanup()

	cfg.DisabledTools = AllToolNames()
	s := NewServer(database, cfg, "test")

	if tools := s.ListTools(); len(tools) != 0 {
		t.Errorf("registered tool count = %d, want 0 (all disabled)", len(tools))
	}
}

func TestValidateDisabledTools(t *testing.T) {
	tests := []struct {
		name    string
		input   []string
		wantLen int
	}{
		{name: "all valid", input: []string{"paste_purge", "item_parse"}, wantLen: 0},
		{name: "one unknown", input: []string{"paste_purge", "fake_tool"}, wantLen: 1},
		{name: "all unknown", input: []string{"foo", "bar", "baz"}, wantLen: 3},
		{name: "empty list", input: []string{}, wantLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unknown := ValidateDisabledTools(tt.input)
			if len(unknown) != tt.wantLen {
				t.Errorf("ValidateDisabledTools() returned %d unknown, want %d", len(unknown), tt.wantLen)
			}
		})
	}
}

func TestValidateDisabledTypes(t *testing.T) {
	unknown := ValidateDisabledTypes([]string{"build", "workspace", "paste", "gem"})
	if len(unknown) != 2 || unknown[0] != "workspace" || unknown[1] != "gem" {
		t.Errorf("ValidateDisabledTypes() = %v, want [workspace gem]", unknown)
	}
}

func TestExpandTypesToTools(t *testing.T) {
	if tools := ExpandTypesToTools(nil); tools != nil {
		t.Errorf("ExpandTypesToTools(nil) = %v, want nil", tools)
	}

	tools := ExpandTypesToTools([]string{"build", "notes"})
	sort.Strings(tools)
	want := []string{"build_decode", "build_summary", "notes_render"}
	if strings.Join(tools, ",") != strings.Join(want, ",") {
		t.Errorf("ExpandTypesToTools() = %v, want %v", tools, want)
	}
}

func TestAllToolNames(t *testing.T) {
	names := AllToolNames()
	if len(names) != 9 {
		t.Errorf("AllToolNames() returned %d names, want 9", len(names))
	}

	// Every tool belongs to a known type
	if unknown := ValidateDisabledTypes(toolTypes(names)); len(unknown) != 0 {
		t.Errorf("tools with unknown types: %v", unknown)
	}
}

// toolTypes maps tool names to their type names.
func toolTypes(names []string) []string {
	types := make([]string, 0, len(names))
	for _, name := range names {
		types = append(types, GetTypeForTool(name))
	}
	return types
}

func TestErrorResult_InternalDoesNotExposeDetails(t *testing.T) {
	r := errorResult(errors.NewInternal(fmt.Errorf("sql error: open /tmp/secret.db: permission denied")))
	if !r.IsError {
		t.Fatal("expected IsError=true")
	}

	errObj := errorObject(t, r)
	if errObj["code"] != string(errors.ErrInternal) {
		t.Fatalf("code=%v, want %v", errObj["code"], errors.ErrInternal)
	}
	if _, ok := errObj["details"]; ok {
		t.Fatal("expected INTERNAL errors to omit details")
	}
}

func TestErrorResult_WrappedErrorPreservesContext(t *testing.T) {
	wrappedErr := fmt.Errorf("gear[2]: %w", errors.NewInvalidItem("expected rarity"))

	errObj := errorObject(t, errorResult(wrappedErr))
	if errObj["code"] != string(errors.ErrInvalidItem) {
		t.Errorf("code=%v, want %v", errObj["code"], errors.ErrInvalidItem)
	}
	if msg := errObj["message"].(string); !strings.Contains(msg, "gear[2]") {
		t.Errorf("message should contain wrapper context 'gear[2]', got: %s", msg)
	}
}

func TestErrorResult_NonInternalIncludesDetails(t *testing.T) {
	errObj := errorObject(t, errorResult(errors.NewNotFound("abc")))
	if errObj["code"] != string(errors.ErrNotFound) {
		t.Fatalf("code=%v, want %v", errObj["code"], errors.ErrNotFound)
	}
	if _, ok := errObj["details"]; !ok {
		t.Fatal("expected non-INTERNAL errors to include details when present")
	}
}

func TestErrorResult_PlainError(t *testing.T) {
	errObj := errorObject(t, errorResult(fmt.Errorf("boom")))
	if errObj["code"] != string(errors.ErrInternal) || errObj["message"] != "an internal error occurred" {
		t.Errorf("unexpected payload: %v", errObj)
	}
}

// Helper functions

func errorObject(t *testing.T, result *mcp.CallToolResult) map[string]any {
	t.Helper()
	var payload map[string]any
	if err := json.Unmarshal([]byte(result.Content[0].(mcp.TextContent).Text), &payload); err != nil {
		t.Fatalf("failed to unmarshal error payload: %v", err)
	}
	return payload["error"].(map[string]any)
}

// parseOutput extracts and unmarshals the JSON output from an MCP result.
func parseOutput(t *testing.T, result *mcp.CallToolResult) map[string]any {
	t.Helper()
	if result.IsError {
		t.Fatalf("expected success, got error: %v", extractErrorMessage(result))
	}
	var output map[string]any
	if err := json.Unmarshal([]byte(result.Content[0].(mcp.TextContent).Text), &output); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	return output
}

func assertErrorCode(t *testing.T, result *mcp.CallToolResult, expectedCode string) {
	t.Helper()

	if len(result.Content) == 0 {
		t.Errorf("no content in error result")
		return
	}

	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Errorf("content is not TextContent")
		return
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(text.Text), &payload); err != nil {
		t.Errorf("failed to unmarshal error payload: %v", err)
		return
	}

	errorObj, ok := payload["error"].(map[string]any)
	if !ok {
		t.Errorf("no error object in payload")
		return
	}

	code, ok := errorObj["code"].(string)
	if !ok {
		t.Errorf("no code in error object")
		return
	}

	if code != expectedCode {
		t.Errorf("got error code %q, want %q", code, expectedCode)
	}
}

func extractErrorMessage(result *mcp.CallToolResult) string {
	if len(result.Content) == 0 {
		return "<no content>"
	}

	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		return "<not text content>"
	}

	return text.Text
}
