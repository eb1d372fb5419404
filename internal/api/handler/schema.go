package handler

// messageResponse is the standard envelope returned on all 4xx/5xx responses.
type messageResponse struct {
	Message string `json:"message"`
}

// validationErrorResponse is returned when a payload fails schema validation
// at the proxy boundary. Errors is keyed by json field name.
type validationErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

// activeStatsFallback mirrors the zeroed body sent when the active/inactive
// read fails: callers always receive a renderable shape.
type activeStatsFallback struct {
	Message  string `json:"message"`
	Active   int    `json:"active"`
	Inactive int    `json:"inactive"`
	Total    int    `json:"total"`
}

// pdfRequest is the optional body of POST /pdf/current. When URL is absent
// or unusable the handler falls back to the Referer header.
type pdfRequest struct {
	URL string `json:"url"`
}
