package furrow

import "context"

// Handler answers one request. The response is pre-seeded by the server
// with the request's protocol version and a 200 status; the handler mutates
// it in place through the builder operations.
type Handler interface {
	Handle(ctx context.Context, request *Request, response *Response)
}

// HandlerFunc is a shorthand implementation for Handler.
type HandlerFunc func(ctx context.Context, request *Request, response *Response)

func (f HandlerFunc) Handle(ctx context.Context, request *Request, response *Response) {
	f(ctx, request, response)
}
