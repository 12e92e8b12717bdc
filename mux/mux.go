package mux

import (
	"context"
	"fmt"

	"github.com/oxbowlabs/furrow"
	"github.com/oxbowlabs/furrow/specs"
)

// New creates an empty Mux.
func New() *Mux {
	return &Mux{}
}

// Mux routes requests to handlers by method and target pattern. Routes are
// tried in insertion order and the first match wins. Unmatched requests go
// to the NotFound handler, which by default answers 404 with an empty body.
type Mux struct {
	routes          []*route
	notFoundHandler furrow.Handler
}

// Add registers a handler for the method and pattern, panicking on an
// invalid route the way a misconfigured table should fail at startup.
func (mx *Mux) Add(method specs.HttpMethod, pattern string, handler furrow.Handler) *Mux {
	rt, err := newRoute(method, pattern, handler)
	if err != nil {
		panic(fmt.Errorf("cannot add route <%s>'%s': %s", method, pattern, err))
	}
	mx.routes = append(mx.routes, rt)
	return mx
}

// NotFound overrides the fallback handler.
func (mx *Mux) NotFound(handler furrow.Handler) *Mux {
	mx.notFoundHandler = handler
	return mx
}

func (mx *Mux) Handle(ctx context.Context, request *furrow.Request, response *furrow.Response) {
	for _, rt := range mx.routes {
		if rt.method != request.Method() {
			continue
		}
		if ok, params := rt.Match(request.Target()); ok {
			if len(params) > 0 {
				ctx = context.WithValue(ctx, paramsContextKey{}, params)
			}
			rt.handler.Handle(ctx, request, response)
			return
		}
	}

	if mx.notFoundHandler != nil {
		mx.notFoundHandler.Handle(ctx, request, response)
		return
	}

	response.SetStatus(specs.StatusCodeNotFound)
}

type paramsContextKey struct{}

// Param returns the captured route parameter for the name, or "" when the
// request did not match a parameterized route.
func Param(ctx context.Context, name string) string {
	if params, ok := ctx.Value(paramsContextKey{}).(map[string]string); ok {
		return params[name]
	}
	return ""
}
