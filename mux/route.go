package mux

import (
	"errors"
	"fmt"
	"strings"

	"github.com/oxbowlabs/furrow"
	"github.com/oxbowlabs/furrow/internal/routing"
	"github.com/oxbowlabs/furrow/specs"
)

func newRoute(method specs.HttpMethod, pattern string, handler furrow.Handler) (*route, error) {
	if pattern == "" {
		return nil, errors.New("route pattern must have at least one character")
	}
	if pattern[0] != '/' {
		return nil, fmt.Errorf("route pattern must start with '/': %s", pattern)
	}
	if !method.IsValid() {
		return nil, fmt.Errorf("invalid http method: %s", method)
	}
	if handler == nil {
		return nil, fmt.Errorf("nil handler: %s", pattern)
	}

	if len(pattern) > 2 {
		pattern = strings.TrimSuffix(pattern, "/")
	}

	routePattern, err := routing.ParseRoutePattern(pattern)
	if err != nil {
		return nil, err
	}

	return &route{
		RoutePattern: *routePattern,
		method:       method,
		handler:      handler,
	}, nil
}

type route struct {
	routing.RoutePattern
	method  specs.HttpMethod
	handler furrow.Handler
}
