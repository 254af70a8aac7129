// ABOUTME: Tool dispatcher exposing the retrieval engine as named operations
// ABOUTME: Operations take loosely typed arguments and always answer with text

package tools

import (
	"context"
	"sort"

	"webfetch-api/core/errors"
)

// Operation names
const (
	CheckInternet = "check_internet"
	ScrapeWebsite = "scrape_website"
	ResetCache    = "reset_cache"
)

// Retriever is the engine behind the operations
type Retriever interface {
	CheckInternet(ctx context.Context) string
	Scrape(ctx context.Context, address string) string
	ResetCache(ctx context.Context) string
}

// Operation describes one callable tool
type Operation struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`

	run func(ctx context.Context, args map[string]any) string
}

// Dispatcher routes operation calls by name
type Dispatcher struct {
	ops map[string]Operation
}

// NewDispatcher registers the three retrieval operations against r
func NewDispatcher(r Retriever) *Dispatcher {
	d := &Dispatcher{ops: make(map[string]Operation)}

	d.register(Operation{
		Name:        CheckInternet,
		Description: "Check whether the internet is reachable.",
		Parameters:  objectSchema(nil, nil),
		run: func(ctx context.Context, _ map[string]any) string {
			return r.CheckInternet(ctx)
		},
	})
	d.register(Operation{
		Name: ScrapeWebsite,
		Description: "Retrieve the main content of a web page. Uses cached content, " +
			"public APIs for known sites, or scrapes and extracts the page.",
		Parameters: objectSchema(map[string]any{
			"url": map[string]any{
				"type":        "string",
				"description": "Address to retrieve. https:// is assumed when no scheme is given.",
			},
		}, []string{"url"}),
		run: func(ctx context.Context, args map[string]any) string {
			address, _ := args["url"].(string)
			return r.Scrape(ctx, address)
		},
	})
	d.register(Operation{
		Name:        ResetCache,
		Description: "Clear all cached content and the connectivity status.",
		Parameters:  objectSchema(nil, nil),
		run: func(ctx context.Context, _ map[string]any) string {
			return r.ResetCache(ctx)
		},
	})

	return d
}

func (d *Dispatcher) register(op Operation) {
	d.ops[op.Name] = op
}

// Operations lists the registered operations sorted by name
func (d *Dispatcher) Operations() []Operation {
	ops := make([]Operation, 0, len(d.ops))
	for _, op := range d.ops {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i].Name < ops[j].Name })
	return ops
}

// Call runs the named operation. The only error is UnknownOperationError;
// retrieval failures are part of the returned text.
func (d *Dispatcher) Call(ctx context.Context, name string, args map[string]any) (string, error) {
	op, ok := d.ops[name]
	if !ok {
		return "", &errors.UnknownOperationError{Name: name}
	}
	if args == nil {
		args = map[string]any{}
	}
	return op.run(ctx, args), nil
}

func objectSchema(properties map[string]any, required []string) map[string]any {
	if properties == nil {
		properties = map[string]any{}
	}
	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}
