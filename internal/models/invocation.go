package models

// Request is the descriptor a trigger passes to the mood handler.
type Request struct {
	HTTPMethod            string            `json:"httpMethod"`
	Body                  *string           `json:"body,omitempty"` // nil when the trigger carried no body
	QueryStringParameters map[string]string `json:"queryStringParameters,omitempty"`
}

// Response is the descriptor the mood handler returns to its trigger.
type Response struct {
	StatusCode      int               `json:"statusCode"`
	Headers         map[string]string `json:"headers"`
	Body            string            `json:"body"`
	IsBase64Encoded bool              `json:"isBase64Encoded"`
}
