package main

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/docyard/treeml"
	"github.com/docyard/treeml/pkg/version"
)

func main() {
	mcpServer := server.NewMCPServer(
		"treeml-mcp",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	formatParam := mcp.WithString("format",
		mcp.Description("Output format (yaml, json, json-pretty, toml, properties) - defaults to yaml"),
	)

	convertTool := mcp.NewTool("convert",
		mcp.WithDescription("Convert a TOML document to the requested output format"),
		mcp.WithString("toml",
			mcp.Required(),
			mcp.Description("TOML document content"),
		),
		formatParam,
	)
	mcpServer.AddTool(convertTool, convertHandler)

	diffTool := mcp.NewTool("diff",
		mcp.WithDescription("Convert two TOML documents and return a unified diff of the results"),
		mcp.WithString("baseToml",
			mcp.Required(),
			mcp.Description("Base TOML document content"),
		),
		mcp.WithString("targetToml",
			mcp.Required(),
			mcp.Description("Target TOML document content"),
		),
		formatParam,
	)
	mcpServer.AddTool(diffTool, diffHandler)

	versionTool := mcp.NewTool("version",
		mcp.WithDescription("Get treeml version information"),
	)
	mcpServer.AddTool(versionTool, versionHandler)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func parseFormat(request mcp.CallToolRequest) (string, error) {
	format := "yaml"

	if args, ok := request.Params.Arguments.(map[string]any); ok {
		format = parseOptionalString(args, "format", format)
	}

	for _, ext := range treeml.Extensions() {
		if format == ext {
			return format, nil
		}
	}

	return "", fmt.Errorf("unsupported format %q (supported: %s)", format, strings.Join(treeml.Extensions(), ", "))
}

func parseOptionalString(args map[string]any, key string, defaultValue string) string {
	if val := args[key]; val != nil {
		if str, ok := val.(string); ok && str != "" {
			return str
		}
	}

	return defaultValue
}

func convertHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	src, err := request.RequireString("toml")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	format, err := parseFormat(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	t, err := treeml.ParseTOML([]byte(src))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	out, err := t.Output(format)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(string(out)), nil
}

func diffHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	base, err := request.RequireString("baseToml")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	target, err := request.RequireString("targetToml")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	format, err := parseFormat(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := treeml.CompareBytes("base", "target", []byte(base), []byte(target), format)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(result.Diff), nil
}

func versionHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	bi := version.GetVersion()
	if bi == nil {
		return mcp.NewToolResultError("build info unavailable"), nil
	}

	return mcp.NewToolResultText(bi.String()), nil
}