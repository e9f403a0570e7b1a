package dto

import (
	"github.com/jgbarallobre/Contable/internal/utils/pagination"
)

// APIResponse is the envelope every endpoint returns.
type APIResponse struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data,omitempty"`
	Message    string      `json:"message,omitempty"`
	Total      *int64      `json:"total,omitempty"`
	Page       *int        `json:"page,omitempty"`
	PageSize   *int        `json:"pageSize,omitempty"`
	TotalPages *int        `json:"totalPages,omitempty"`
}

// OK wraps data in a successful envelope.
func OK(data interface{}) APIResponse {
	return APIResponse{Success: true, Data: data}
}

// OKMessage returns a successful envelope carrying only a message.
func OKMessage(message string) APIResponse {
	return APIResponse{Success: true, Message: message}
}

// OKPage wraps a list page together with its pagination metadata.
func OKPage(data interface{}, total int64, params pagination.Params) APIResponse {
	totalPages := params.TotalPages(total)
	return APIResponse{
		Success:    true,
		Data:       data,
		Total:      &total,
		Page:       &params.Page,
		PageSize:   &params.PageSize,
		TotalPages: &totalPages,
	}
}

// Fail wraps an error message in a failed envelope.
func Fail(message string) APIResponse {
	return APIResponse{Success: false, Message: message}
}
