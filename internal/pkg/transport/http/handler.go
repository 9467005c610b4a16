package http

import (
	"context"
	"net/http"

	"github.com/go-kit/kit/endpoint"
)

// DecodeRequestFunc extracts a typed request from an incoming HTTP request.
type DecodeRequestFunc func(ctx context.Context, r *http.Request) (interface{}, error)

// EncodeResponseFunc writes an endpoint response to the client.
type EncodeResponseFunc func(ctx context.Context, w http.ResponseWriter, response interface{}) error

// QueryBinder populates a request DTO from query parameters and validates it.
type QueryBinder interface {
	BindQuery(r *http.Request) error
}

// DecodeQueryRequest decodes a GET request's query parameters into T.
func DecodeQueryRequest[T any, PT interface {
	*T
	QueryBinder
}](_ context.Context, r *http.Request) (interface{}, error) {
	var req T

	ptr := PT(&req)
	if err := ptr.BindQuery(r); err != nil {
		return nil, err
	}

	return ptr, nil
}

// MakeHandlerFunc adapts a go-kit endpoint plus decode/encode functions into
// an http.HandlerFunc. All errors funnel through ErrorResponse.
func MakeHandlerFunc(ep endpoint.Endpoint, dec DecodeRequestFunc, enc EncodeResponseFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		request, err := dec(ctx, r)
		if err != nil {
			ErrorResponse(ctx, err, w)

			return
		}

		response, err := ep(ctx, request)
		if err != nil {
			ErrorResponse(ctx, err, w)

			return
		}

		if err := enc(ctx, w, response); err != nil {
			ErrorResponse(ctx, err, w)
		}
	}
}
