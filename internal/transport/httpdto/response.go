package httpdto

// ErrorResponse is the only error envelope this API exposes; the underlying
// error message is passed through verbatim.
type ErrorResponse struct {
	Error string `json:"error"`
}

func NewErrorResponse(err string) ErrorResponse {
	return ErrorResponse{Error: err}
}
