package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	profileHandler       profileHandler
	projectHandler       projectHandler
	certificationHandler certificationHandler
	blogPostHandler      blogPostHandler
	serviceHandler       serviceHandler
	messageHandler       messageHandler
	authHandler          authHandler
	uploadHandler        uploadHandler
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error" example:"internal server error"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"title"`
	Details string `json:"details,omitempty" example:"Additional error details"`
	Cause   string `json:"cause,omitempty" example:"Underlying error cause"`
}

// statusMessage is the body of mutation acknowledgements.
type statusMessage struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func successMessage(message string) statusMessage {
	return statusMessage{Status: "success", Message: message}
}
