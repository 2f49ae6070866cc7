package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"isogen/internal/core/docgen"
	"isogen/internal/infrastructure/export/htmldoc"
)

// Stdio tool server exposing the document generator to MCP clients, so
// the template and intake flow can be driven outside the HTTP API.
func main() {
	s := server.NewMCPServer("isogen", "1.0.0")

	s.AddTool(
		mcp.NewTool("list_questions",
			mcp.WithDescription("List the intake questions in order."),
		),
		listQuestions,
	)

	s.AddTool(
		mcp.NewTool("render_template",
			mcp.WithDescription("Render the blank questionnaire template with today's date."),
		),
		renderTemplate,
	)

	s.AddTool(
		mcp.NewTool("render_editor_content",
			mcp.WithDescription("Render the default free-form editor document seeded from the chapter catalog."),
			mcp.WithString("type", mcp.Description("ISO type name, defaults to ISO 9001.")),
		),
		renderEditorContent,
	)

	s.AddTool(
		mcp.NewTool("apply_answers",
			mcp.WithDescription("Render the document with intake answers substituted. Answers are a JSON object keyed by question index."),
			mcp.WithString("answers", mcp.Required(), mcp.Description("JSON object mapping question index to answer text.")),
		),
		applyAnswers,
	)

	s.AddTool(
		mcp.NewTool("wrap_export",
			mcp.WithDescription("Wrap document HTML into a downloadable print or word payload."),
			mcp.WithString("format", mcp.Required(), mcp.Description("print or word.")),
			mcp.WithString("title", mcp.Description("Document title, defaults to the handbook title.")),
			mcp.WithString("content", mcp.Required(), mcp.Description("Document body HTML.")),
		),
		wrapExport,
	)

	if err := server.ServeStdio(s); err != nil {
		log.Fatalf("mcp server error: %v", err)
	}
}

func listQuestions(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var b strings.Builder
	for i, q := range docgen.Questions() {
		fmt.Fprintf(&b, "%d. %s\n", i, q)
	}
	return mcp.NewToolResultText(b.String()), nil
}

func renderTemplate(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(docgen.QuestionnaireTemplate(time.Now())), nil
}

func renderEditorContent(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	docType := request.GetString("type", "ISO 9001")
	return mcp.NewToolResultText(docgen.DefaultEditorContent(docType, time.Now())), nil
}

func applyAnswers(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := request.RequireString("answers")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var keyed map[string]string
	if err := json.Unmarshal([]byte(raw), &keyed); err != nil {
		return mcp.NewToolResultError("answers must be a JSON object of index to text: " + err.Error()), nil
	}

	answers := make(map[int]string, len(keyed))
	for key, value := range keyed {
		index, err := strconv.Atoi(key)
		if err != nil {
			return mcp.NewToolResultError("answer key is not a question index: " + key), nil
		}
		answers[index] = value
	}

	return mcp.NewToolResultText(docgen.Render(time.Now(), answers)), nil
}

func wrapExport(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	format, err := request.RequireString("format")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	content, err := request.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	title := request.GetString("title", "ISO 9001 Kwaliteitshandboek")

	exporter := htmldoc.New()
	switch format {
	case "print":
		return mcp.NewToolResultText(string(exporter.Print(title, content))), nil
	case "word":
		return mcp.NewToolResultText(string(exporter.Word(title, content))), nil
	default:
		return mcp.NewToolResultError("format must be print or word"), nil
	}
}
