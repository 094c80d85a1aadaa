package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/natevvv/osm-turn-routing/internal/config"
	server "github.com/natevvv/osm-turn-routing/pkg/server/openapi_server"
)

func main() {
	configFile := flag.String("config", "", "Configuration file (yaml, json or toml)")
	address := flag.String("address", "", "Listen address, overrides the configuration")
	flag.Parse()

	c, err := config.Load(*configFile)
	if err != nil {
		log.Fatal(err)
	}
	if *address != "" {
		c.Server.Address = *address
	}

	start := time.Now()
	router, err := server.NewRouterFromFiles(c.Graph.File, c.Graph.Penalties, c.PenaltyOptions(), c.Routing.Navigator)
	if err != nil {
		log.Fatal(err)
	}
	router.SetDebugLevel(c.Debug.Level)
	log.Printf("Loaded %v in %s, navigator %v\n", c.Graph.File, time.Since(start), router.Navigator())

	service := server.NewDefaultApiService(router, server.NavigatorConfig{VehicleType: c.Routing.Vehicle, PreferHighway: c.Routing.PreferHighway})
	controller := server.NewDefaultApiController(service)

	handler := server.NewRouter(controller)

	log.Printf("Starting server on %v\n", c.Server.Address)
	log.Fatal(http.ListenAndServe(c.Server.Address, handler))
}
