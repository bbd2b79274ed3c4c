package router

import (
	"context"
	"errors"
	"testing"
)

func TestDispatchUnknownRoute(t *testing.T) {
	r := New(nil)

	tests := []struct {
		name     string
		resource string
		method   string
	}{
		{"unregistered path", "/nowhere", "GET"},
		{"wrong method on registered path", "/tables", "DELETE"},
		{"empty resource", "", "GET"},
	}

	r.Register("/tables", "GET", func(ctx context.Context, req *Request) (*Response, error) {
		return NewResponse(200, "ok"), nil
	})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := r.Dispatch(context.Background(), &Request{Resource: tt.resource, Method: tt.method})
			if resp.StatusCode != 400 {
				t.Errorf("Dispatch() status = %d, want 400", resp.StatusCode)
			}
			if resp.Body != "Invalid request" {
				t.Errorf("Dispatch() body = %q, want %q", resp.Body, "Invalid request")
			}
		})
	}
}

func TestDispatchRegisteredHandler(t *testing.T) {
	r := New(nil)
	r.Register("/tables", "GET", func(ctx context.Context, req *Request) (*Response, error) {
		return NewResponse(200, "ok"), nil
	})

	resp := r.Dispatch(context.Background(), &Request{Resource: "/tables", Method: "GET"})
	if resp.StatusCode != 200 {
		t.Errorf("Dispatch() status = %d, want 200", resp.StatusCode)
	}
	if resp.Body != "ok" {
		t.Errorf("Dispatch() body = %q, want %q", resp.Body, "ok")
	}
}

func TestDispatchHandlerError(t *testing.T) {
	r := New(nil)
	r.Register("/fail", "POST", func(ctx context.Context, req *Request) (*Response, error) {
		return nil, errors.New("boom")
	})

	resp := r.Dispatch(context.Background(), &Request{Resource: "/fail", Method: "POST"})
	if resp.StatusCode != 400 {
		t.Errorf("Dispatch() status = %d, want 400", resp.StatusCode)
	}
	if resp.Body != "Error: boom" {
		t.Errorf("Dispatch() body = %q, want %q", resp.Body, "Error: boom")
	}
}

func TestDispatchCustomErrorMapper(t *testing.T) {
	r := New(func(err error) *Response {
		return NewResponse(418, err.Error())
	})
	r.Register("/fail", "POST", func(ctx context.Context, req *Request) (*Response, error) {
		return nil, errors.New("boom")
	})

	resp := r.Dispatch(context.Background(), &Request{Resource: "/fail", Method: "POST"})
	if resp.StatusCode != 418 {
		t.Errorf("Dispatch() status = %d, want 418", resp.StatusCode)
	}
}

func TestDispatchRecoversPanic(t *testing.T) {
	r := New(nil)
	r.Register("/panic", "GET", func(ctx context.Context, req *Request) (*Response, error) {
		panic("unexpected state")
	})

	resp := r.Dispatch(context.Background(), &Request{Resource: "/panic", Method: "GET"})
	if resp.StatusCode != 400 {
		t.Errorf("Dispatch() status = %d, want 400", resp.StatusCode)
	}
	if resp.Body != "Error: unexpected state" {
		t.Errorf("Dispatch() body = %q, want %q", resp.Body, "Error: unexpected state")
	}
}

func TestNewResponse(t *testing.T) {
	t.Run("string body used verbatim", func(t *testing.T) {
		resp := NewResponse(200, "plain text")
		if resp.Body != "plain text" {
			t.Errorf("NewResponse() body = %q, want %q", resp.Body, "plain text")
		}
	})

	t.Run("struct body is JSON-encoded", func(t *testing.T) {
		resp := NewResponse(200, map[string]int{"id": 7})
		if resp.Body != `{"id":7}` {
			t.Errorf("NewResponse() body = %q, want %q", resp.Body, `{"id":7}`)
		}
		if resp.Headers["Content-Type"] != "application/json" {
			t.Errorf("NewResponse() Content-Type = %q, want application/json", resp.Headers["Content-Type"])
		}
	})
}
