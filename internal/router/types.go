package router

import "encoding/json"

// Request is the normalized request handed to route handlers, independent of
// the hosting platform's event shape.
type Request struct {
	Resource        string            `json:"resource"`
	Method          string            `json:"httpMethod"`
	Body            []byte            `json:"body"`
	PathParameters  map[string]string `json:"pathParameters"`
	QueryParameters map[string]string `json:"queryStringParameters"`
	Headers         map[string]string `json:"headers"`
}

// Response is the normalized handler response: a status code, a JSON-encoded
// body and a Content-Type header.
type Response struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers"`
	Body       string            `json:"body"`
}

// NewResponse builds a Response. A string body is used verbatim; anything
// else is JSON-encoded.
func NewResponse(statusCode int, body any) *Response {
	var encoded string
	switch b := body.(type) {
	case string:
		encoded = b
	default:
		data, err := json.Marshal(body)
		if err != nil {
			return &Response{
				StatusCode: 500,
				Headers:    map[string]string{"Content-Type": "application/json"},
				Body:       "Failed to serialize response: " + err.Error(),
			}
		}
		encoded = string(data)
	}

	return &Response{
		StatusCode: statusCode,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       encoded,
	}
}
