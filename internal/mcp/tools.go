package mcp

import "github.com/mark3labs/mcp-go/mcp"

var decodeToolDef = mcp.NewTool("build_decode",
	mcp.WithDescription("Decode a Path of Building export code into the character, tree specs, skill sets, item sets and notes."),
	mcp.WithString("code", mcp.Required(), mcp.Description("URL-safe base64 export code as copied from Path of Building")),
)

var summaryToolDef = mcp.NewTool("build_summary",
	mcp.WithDescription("Summarize a build: generated title, core stats, defenses, offense and notable config."),
	mcp.WithString("code", mcp.Required(), mcp.Description("URL-safe base64 export code")),
	mcp.WithBoolean("no_level", mcp.Description("Omit the 'Level N' prefix from the title")),
)

var itemParseToolDef = mcp.NewTool("item_parse",
	mcp.WithDescription("Parse Path of Building item text into rarity, base, properties and mods."),
	mcp.WithString("text", mcp.Required(), mcp.Description("Item text starting with a 'Rarity:' line")),
)

var notesRenderToolDef = mcp.NewTool("notes_render",
	mcp.WithDescription("Render build notes to HTML, resolving ^N/^xRRGGBB color codes and allow-listed links. Pass either code or notes."),
	mcp.WithString("code", mcp.Description("Export code whose notes should be rendered")),
	mcp.WithString("notes", mcp.Description("Raw notes text")),
)

var storeToolDef = mcp.NewTool("paste_store",
	mcp.WithDescription("Store an export code as a paste. The code must decode; the title defaults to the generated build title."),
	mcp.WithString("code", mcp.Required(), mcp.Description("URL-safe base64 export code")),
	mcp.WithString("title", mcp.Description("Paste title")),
)

var fetchToolDef = mcp.NewTool("paste_fetch",
	mcp.WithDescription("Fetch a paste by ID."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Paste ID")),
	mcp.WithBoolean("include_deleted", mcp.Description("Include soft-deleted pastes")),
	mcp.WithBoolean("include_code", mcp.Description("Include the export code (default true)")),
	mcp.WithBoolean("decode", mcp.Description("Attach the decoded build")),
)

var listToolDef = mcp.NewTool("paste_list",
	mcp.WithDescription("List paste summaries, newest first."),
	mcp.WithString("class", mcp.Description("Filter by base class name")),
	mcp.WithNumber("limit", mcp.Description("Max items (default 20, max 100)")),
	mcp.WithNumber("offset", mcp.Description("Pagination offset")),
	mcp.WithBoolean("include_deleted", mcp.Description("Include soft-deleted pastes")),
)

var deleteToolDef = mcp.NewTool("paste_delete",
	mcp.WithDescription("Soft-delete a paste."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Paste ID")),
)

var purgeToolDef = mcp.NewTool("paste_purge",
	mcp.WithDescription("Permanently delete soft-deleted pastes."),
	mcp.WithNumber("older_than_days", mcp.Description("Only purge pastes deleted more than N days ago")),
)
