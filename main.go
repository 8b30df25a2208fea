package main

import (
	"log"
	"net/http"

	"github.com/BBoyRomano/idleon-spice-optimizer/internal/catalog"
	"github.com/BBoyRomano/idleon-spice-optimizer/internal/config"
	"github.com/BBoyRomano/idleon-spice-optimizer/internal/httpmw"
	"github.com/BBoyRomano/idleon-spice-optimizer/internal/server"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	cat, err := catalog.Default()
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}

	mux := http.NewServeMux()
	rr := &server.RouteRegistry{}
	app := &server.App{Catalog: cat, Config: cfg, Logger: log.Default()}

	server.RegisterAPIRoutes(mux, rr, app)
	server.RegisterUI(mux, rr)

	handler := httpmw.Chain(mux,
		httpmw.WithRequestID,
		httpmw.WithRecover(log.Default()),
		httpmw.WithAccessLog(log.Default()),
	)

	addr := ":" + cfg.Server.Port
	log.Printf("spice optimizer listening on http://localhost%s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
