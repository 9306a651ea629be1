package slides_tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	slides_v1 "google.golang.org/api/slides/v1"

	"github.com/obe711/google-workspace-mcp/internal/format"
	"github.com/obe711/google-workspace-mcp/internal/instrumentation"
	"github.com/obe711/google-workspace-mcp/internal/server"
	"github.com/obe711/google-workspace-mcp/internal/slides"
	"github.com/obe711/google-workspace-mcp/internal/tools/common"
)

// RegisterSlidesTools registers all Slides-related tools with the MCP server
func RegisterSlidesTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	searchPresentationsTool := mcp.NewTool("slides_search_presentations",
		mcp.WithDescription("Search Google Slides presentations by name"),
		common.UserOption(),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Name fragment to search for"),
		),
		mcp.WithNumber("maxResults",
			mcp.Description("Maximum number of results to return, 1-100 (default: 10)"),
		),
	)

	s.AddTool(searchPresentationsTool, common.InstrumentedToolHandlerWithService(
		"slides_search_presentations", instrumentation.ServiceSlides, instrumentation.OperationSearch, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleSearchPresentations(ctx, request, sc)
		}))

	getPresentationTool := mcp.NewTool("slides_get_presentation",
		mcp.WithDescription("Get presentation metadata with a one-line summary per slide"),
		common.UserOption(),
		mcp.WithString("presentationId",
			mcp.Required(),
			mcp.Description("The ID of the presentation"),
		),
	)

	s.AddTool(getPresentationTool, common.InstrumentedToolHandlerWithService(
		"slides_get_presentation", instrumentation.ServiceSlides, instrumentation.OperationGet, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetPresentation(ctx, request, sc)
		}))

	getSlideTool := mcp.NewTool("slides_get_slide",
		mcp.WithDescription("Get a single slide's text content and speaker notes"),
		common.UserOption(),
		mcp.WithString("presentationId",
			mcp.Required(),
			mcp.Description("The ID of the presentation"),
		),
		mcp.WithString("slideId",
			mcp.Required(),
			mcp.Description("The object ID of the slide"),
		),
	)

	s.AddTool(getSlideTool, common.InstrumentedToolHandlerWithService(
		"slides_get_slide", instrumentation.ServiceSlides, instrumentation.OperationGet, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetSlide(ctx, request, sc)
		}))

	return nil
}

// slidesClient resolves the identity for this call and builds a Slides client
// impersonating it
func slidesClient(ctx context.Context, sc *server.ServerContext, args map[string]interface{}) (*slides.Client, error) {
	httpClient, identity, err := common.DelegatedClient(ctx, sc, args)
	if err != nil {
		return nil, err
	}
	return slides.NewClient(ctx, httpClient, identity)
}

func handleSearchPresentations(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	query, ok := args["query"].(string)
	if !ok || query == "" {
		return mcp.NewToolResultError("query is required"), nil
	}

	maxResults := int64(10)
	if v, ok := args["maxResults"].(float64); ok {
		maxResults = int64(v)
	}

	client, err := slidesClient(ctx, sc, args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	presentations, err := client.SearchPresentations(ctx, query, maxResults)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error searching presentations: %v", err)), nil
	}

	return mcp.NewToolResultText(formatPresentationList(presentations)), nil
}

func handleGetPresentation(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	presentationID, ok := args["presentationId"].(string)
	if !ok || presentationID == "" {
		return mcp.NewToolResultError("presentationId is required"), nil
	}

	client, err := slidesClient(ctx, sc, args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	presentation, err := client.GetPresentation(presentationID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error getting presentation: %v", err)), nil
	}

	return mcp.NewToolResultText(formatPresentation(presentation)), nil
}

func handleGetSlide(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	presentationID, ok := args["presentationId"].(string)
	if !ok || presentationID == "" {
		return mcp.NewToolResultError("presentationId is required"), nil
	}

	slideID, ok := args["slideId"].(string)
	if !ok || slideID == "" {
		return mcp.NewToolResultError("slideId is required"), nil
	}

	client, err := slidesClient(ctx, sc, args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	slide, err := client.GetSlide(presentationID, slideID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error getting slide: %v", err)), nil
	}

	return mcp.NewToolResultText(format.Truncate(formatSlide(slideID, slide), sc.Config().Limits.BulkLimit)), nil
}

func formatPresentationList(presentations []slides.PresentationInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d presentation(s):\n\n", len(presentations))
	for i, p := range presentations {
		fmt.Fprintf(&b, "%d. %s\n", i+1, p.Name)
		fmt.Fprintf(&b, "   ID: %s\n", p.ID)
		if p.ModifiedTime != "" {
			fmt.Fprintf(&b, "   Modified: %s\n", p.ModifiedTime)
		}
		if p.WebViewLink != "" {
			fmt.Fprintf(&b, "   Link: %s\n", p.WebViewLink)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func formatPresentation(p *slides_v1.Presentation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Presentation: %s\n", p.Title)
	fmt.Fprintf(&b, "ID: %s\n", p.PresentationId)
	fmt.Fprintf(&b, "Slides: %d\n\n", len(p.Slides))
	for i, slide := range p.Slides {
		b.WriteString(slides.SummarizeSlide(slide, i))
		b.WriteString("\n")
	}
	return b.String()
}

func formatSlide(slideID string, slide *slides_v1.Page) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Slide %s:\n\n", slideID)

	text := slides.SlideText(slide)
	if text == "" {
		b.WriteString("(no text content)\n")
	} else {
		b.WriteString(text)
		b.WriteString("\n")
	}

	if notes := slides.SpeakerNotes(slide); notes != "" {
		fmt.Fprintf(&b, "\nSpeaker notes:\n%s\n", notes)
	}

	return b.String()
}
