// ABOUTME: Response DTOs for tool invocation and health endpoints
// ABOUTME: Tool results are plain text wrapped with the operation name

package responses

// ToolResult is the text produced by one operation call
type ToolResult struct {
	Tool    string `json:"tool" doc:"Operation that produced the content"`
	Content string `json:"content" doc:"Tagged text result"`
}

// ToolDescription advertises one operation and its argument schema
type ToolDescription struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters" doc:"JSON schema of the arguments object"`
}

// ToolList is the catalogue returned by GET /tools
type ToolList struct {
	Tools []ToolDescription `json:"tools"`
}

// Health reports cache and connectivity state
type Health struct {
	Status       string `json:"status" enum:"ok,degraded"`
	CacheEntries int    `json:"cache_entries"`
	Connectivity string `json:"connectivity" enum:"connected,offline,unknown"`
	LastProbe    string `json:"last_probe,omitempty" doc:"Time since the last connectivity probe"`
	Uptime       string `json:"uptime"`
}
