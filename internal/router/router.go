// Package router dispatches normalized requests to handlers selected by the
// literal pairing of a resource path and an HTTP method.
package router

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// HandlerFunc handles one route. Returned errors are translated to a
// response by the router's error mapper.
type HandlerFunc func(ctx context.Context, req *Request) (*Response, error)

// ErrorMapper translates a handler error into a response at one boundary.
type ErrorMapper func(err error) *Response

// Router maps "{path}:{method}" route keys to handlers. The route table is
// built once at process start and is not mutated after registration
// completes; Dispatch never modifies it.
type Router struct {
	routes   map[string]HandlerFunc
	mapError ErrorMapper
}

// New creates an empty Router using the given error mapper. A nil mapper
// falls back to the catch-all 400 "Error: ..." response.
func New(mapError ErrorMapper) *Router {
	if mapError == nil {
		mapError = func(err error) *Response {
			return NewResponse(400, "Error: "+err.Error())
		}
	}
	return &Router{
		routes:   make(map[string]HandlerFunc),
		mapError: mapError,
	}
}

// Register adds a handler for the exact path and method pair. Path
// parameters are extracted by the platform before dispatch, so the path here
// is the resource template string (e.g. "/tables/{tableId}").
func (r *Router) Register(path, method string, handler HandlerFunc) {
	r.routes[routeKey(path, method)] = handler
}

// Dispatch selects and runs the handler for the request. An unregistered
// route key produces a 400 "Invalid request" response; this is a preserved
// compatibility policy, not a 404.
func (r *Router) Dispatch(ctx context.Context, req *Request) (resp *Response) {
	defer func() {
		if rec := recover(); rec != nil {
			logrus.WithFields(logrus.Fields{
				"resource": req.Resource,
				"method":   req.Method,
				"panic":    rec,
			}).Error("handler panicked")
			resp = NewResponse(400, fmt.Sprintf("Error: %v", rec))
		}
	}()

	handler, ok := r.routes[routeKey(req.Resource, req.Method)]
	if !ok {
		return NewResponse(400, "Invalid request")
	}

	result, err := handler(ctx, req)
	if err != nil {
		return r.mapError(err)
	}
	return result
}

// Len reports the number of registered routes.
func (r *Router) Len() int {
	return len(r.routes)
}

func routeKey(path, method string) string {
	return path + ":" + method
}
