package main

import (
	"context"
	"flag"
	"log"

	"github.com/oxbowlabs/furrow"
	"github.com/oxbowlabs/furrow/mux"
	"github.com/oxbowlabs/furrow/specs"
)

func main() {
	addr := flag.String("addr", "127.0.0.1:4221", "listen address")
	flag.Parse()

	routes := mux.New().
		Add(specs.HttpMethodGet, "/", furrow.HandlerFunc(index)).
		Add(specs.HttpMethodGet, "/echo/{*}", furrow.HandlerFunc(echo)).
		Add(specs.HttpMethodGet, "/user-agent", furrow.HandlerFunc(userAgent))

	server := &furrow.Server{Handler: routes}

	log.Printf("furrowd listening on %s", *addr)
	log.Fatal(server.ListenAndServe(*addr))
}

func index(ctx context.Context, request *furrow.Request, response *furrow.Response) {
}

func echo(ctx context.Context, request *furrow.Request, response *furrow.Response) {
	response.WriteText(mux.Param(ctx, "*"))
}

func userAgent(ctx context.Context, request *furrow.Request, response *furrow.Response) {
	response.WriteText(request.Header().Get("User-Agent"))
}
