package handlers

type Response struct {
	Error string `json:"error"`
}

var (
	// Predefined errors
	NotFoundResponse       = Response{"post not found"}
	DBErrorResponse        = Response{"DB Error"}
	MissingFieldsResponse  = Response{"username and content are required"}
	MissingContentResponse = Response{"content is required"}
)
