package dto

// ErrorResponse envelope de erro das respostas HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
