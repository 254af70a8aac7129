// ABOUTME: Maps tool dispatcher operations to response DTOs
// ABOUTME: Keeps the HTTP shape independent of the core tools package

package mappers

import (
	"webfetch-api/api/dto/responses"
	"webfetch-api/core/tools"
)

// ToToolDescription converts one operation
func ToToolDescription(op tools.Operation) responses.ToolDescription {
	return responses.ToolDescription{
		Name:        op.Name,
		Description: op.Description,
		Parameters:  op.Parameters,
	}
}

// ToToolList converts the dispatcher's operations in order
func ToToolList(ops []tools.Operation) responses.ToolList {
	list := responses.ToolList{Tools: make([]responses.ToolDescription, 0, len(ops))}
	for _, op := range ops {
		list.Tools = append(list.Tools, ToToolDescription(op))
	}
	return list
}
