// ABOUTME: Tool handlers exposing the retrieval operations over HTTP
// ABOUTME: Generic POST /tools/{name} dispatch plus typed routes for each operation

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"webfetch-api/api/dto/mappers"
	"webfetch-api/api/dto/requests"
	"webfetch-api/api/dto/responses"
	"webfetch-api/core/tools"
)

// ToolsHandler handles tool listing and invocation
type ToolsHandler struct {
	dispatcher *tools.Dispatcher
}

// NewToolsHandler creates a new tools handler
func NewToolsHandler(dispatcher *tools.Dispatcher) *ToolsHandler {
	return &ToolsHandler{dispatcher: dispatcher}
}

// RegisterRoutes registers tool routes
func (h *ToolsHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listTools",
		Method:      http.MethodGet,
		Path:        "/tools",
		Summary:     "List tools",
		Description: "Lists the available operations with their argument schemas",
		Tags:        []string{"Tools"},
	}, h.ListTools)

	huma.Register(api, huma.Operation{
		OperationID: "callTool",
		Method:      http.MethodPost,
		Path:        "/tools/{name}",
		Summary:     "Call a tool",
		Description: "Runs the named operation. Retrieval failures are returned as text; unknown names return 404.",
		Tags:        []string{"Tools"},
	}, h.CallTool)

	huma.Register(api, huma.Operation{
		OperationID: "scrapeWebsite",
		Method:      http.MethodPost,
		Path:        "/scrape",
		Summary:     "Scrape a website",
		Description: "Retrieves a page from cache, a public API or by scraping",
		Tags:        []string{"Retrieval"},
	}, h.Scrape)

	huma.Register(api, huma.Operation{
		OperationID: "checkInternet",
		Method:      http.MethodGet,
		Path:        "/internet",
		Summary:     "Check internet connectivity",
		Tags:        []string{"Retrieval"},
	}, h.CheckInternet)

	huma.Register(api, huma.Operation{
		OperationID: "resetCache",
		Method:      http.MethodPost,
		Path:        "/cache/reset",
		Summary:     "Reset the cache",
		Description: "Clears cached content and the connectivity status",
		Tags:        []string{"Retrieval"},
	}, h.ResetCache)
}

// ListToolsOutput defines the output for GET /tools
type ListToolsOutput struct {
	Body responses.ToolList
}

// CallToolInput defines the input for POST /tools/{name}
type CallToolInput struct {
	Name string `path:"name" doc:"Operation name, e.g. scrape_website"`
	Body requests.CallToolRequest
}

// ToolOutput wraps the text result of an operation
type ToolOutput struct {
	Body responses.ToolResult
}

// ScrapeInput defines the input for POST /scrape
type ScrapeInput struct {
	Body requests.ScrapeRequest
}

// ListTools returns the tool catalogue
func (h *ToolsHandler) ListTools(ctx context.Context, input *struct{}) (*ListToolsOutput, error) {
	return &ListToolsOutput{Body: mappers.ToToolList(h.dispatcher.Operations())}, nil
}

// CallTool runs the named operation
func (h *ToolsHandler) CallTool(ctx context.Context, input *CallToolInput) (*ToolOutput, error) {
	return h.call(ctx, input.Name, input.Body.Arguments)
}

// Scrape runs scrape_website
func (h *ToolsHandler) Scrape(ctx context.Context, input *ScrapeInput) (*ToolOutput, error) {
	return h.call(ctx, tools.ScrapeWebsite, map[string]any{"url": input.Body.URL})
}

// CheckInternet runs check_internet
func (h *ToolsHandler) CheckInternet(ctx context.Context, input *struct{}) (*ToolOutput, error) {
	return h.call(ctx, tools.CheckInternet, nil)
}

// ResetCache runs reset_cache
func (h *ToolsHandler) ResetCache(ctx context.Context, input *struct{}) (*ToolOutput, error) {
	return h.call(ctx, tools.ResetCache, nil)
}

func (h *ToolsHandler) call(ctx context.Context, name string, args map[string]any) (*ToolOutput, error) {
	content, err := h.dispatcher.Call(ctx, name, args)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &ToolOutput{Body: responses.ToolResult{Tool: name, Content: content}}, nil
}
