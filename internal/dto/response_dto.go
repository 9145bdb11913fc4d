package dto

import "math"

// Envelope is the uniform response shape: {"status":"success","data":...}
// on the happy path, {"status":"error","message":...} otherwise.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func Success(data any) Envelope {
	return Envelope{Status: "success", Data: data}
}

func SuccessMessage(message string, data any) Envelope {
	return Envelope{Status: "success", Message: message, Data: data}
}

func Error(message string) Envelope {
	return Envelope{Status: "error", Message: message}
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

func NewPagination(page, limit int, total int64) Pagination {
	pages := 0
	if limit > 0 {
		pages = int(math.Ceil(float64(total) / float64(limit)))
	}
	return Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}
