package mcp

import "github.com/mark3labs/mcp-go/mcp"

var generateToolDef = mcp.NewTool("wireframe_generate",
	mcp.WithDescription("Compile a short screen description into an Excalidraw wireframe document. "+
		"Phrases like 'header: Sign in' or 'button: Continue' become laid-out components; "+
		"'screen: Name' starts a new screen."),
	mcp.WithString("text",
		mcp.Required(),
		mcp.Description("Screen description: one phrase per line, or phrases separated by ';' or '|'."),
	),
	mcp.WithString("preset",
		mcp.Description("Canvas preset: mobile, desktop, or tablet. Inferred from the text when omitted."),
	),
	mcp.WithString("size",
		mcp.Description("Explicit canvas size as WxH (e.g. 1280x720). Overrides the preset dimensions."),
	),
	mcp.WithString("theme",
		mcp.Description("Color theme: classic, high_contrast, or blueprint. Default classic."),
	),
	mcp.WithString("fidelity",
		mcp.Description("Rendering fidelity: low (sketchy), medium, or high. Default medium."),
	),
	mcp.WithNumber("seed",
		mcp.Description("Deterministic seed. Derived from the inputs when omitted."),
	),
	mcp.WithString("name",
		mcp.Description("Run name; also drives the output file slug."),
	),
	mcp.WithBoolean("no_library",
		mcp.Description("Skip the fragment library and use primitive shapes only."),
	),
	mcp.WithBoolean("strict",
		mcp.Description("Validate scene invariants before writing. Default true."),
	),
)

var runsToolDef = mcp.NewTool("wireframe_runs",
	mcp.WithDescription("List recorded wireframe generations, newest first."),
	mcp.WithString("slug",
		mcp.Description("Only list runs with this slug."),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of runs to return. Default 20, max 200."),
	),
)

var latestToolDef = mcp.NewTool("wireframe_latest",
	mcp.WithDescription("Fetch the most recent wireframe run, optionally scoped to a slug."),
	mcp.WithString("slug",
		mcp.Description("Return the newest run with this slug."),
	),
)
