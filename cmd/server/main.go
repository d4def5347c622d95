// Command server exposes the accessibility routing engine over HTTP.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"access_router/pkg/api"
	"access_router/pkg/graph"
	"access_router/pkg/poi"
	"access_router/pkg/profile"
	"access_router/pkg/routing"
)

func main() {
	graphPath := flag.String("graph", "walkways.bin", "Path to preprocessed graph binary")
	poiPath := flag.String("pois", "", "Path to point-of-interest catalog (optional)")
	port := flag.Int("port", 8080, "HTTP port")
	corsOrigin := flag.String("cors-origin", "", "CORS allowed origin (empty = same-origin)")
	flag.Parse()

	start := time.Now()

	// Load graph.
	log.Printf("Loading graph from %s...", *graphPath)
	g, err := graph.ReadBinary(*graphPath)
	if err != nil {
		log.Fatalf("Failed to load graph: %v", err)
	}
	log.Printf("Loaded: %d nodes, %d edges", g.NumNodes(), g.NumEdges())

	// Load profiles.
	profiles, err := profile.Default()
	if err != nil {
		log.Fatalf("Failed to load profiles: %v", err)
	}
	log.Printf("Registered %d mobility profiles", profiles.Len())

	// Load POI catalog.
	var catalog *poi.Catalog
	if *poiPath != "" {
		catalog, err = poi.Load(*poiPath)
		if err != nil {
			log.Fatalf("Failed to load POI catalog: %v", err)
		}
		log.Printf("Loaded %d points of interest", catalog.Len())
	}

	// Build routing engine (includes the R-tree snap index).
	log.Println("Building spatial index...")
	engine := routing.NewEngine(g, profiles)

	log.Printf("Ready in %s", time.Since(start).Round(time.Millisecond))

	// Setup HTTP server.
	addr := fmt.Sprintf(":%d", *port)
	cfg := api.DefaultConfig(addr)
	cfg.CORSOrigin = *corsOrigin

	stats := api.StatsResponse{
		NumNodes:    g.NumNodes(),
		NumEdges:    g.NumEdges(),
		NumProfiles: profiles.Len(),
	}
	if catalog != nil {
		stats.NumPOIs = catalog.Len()
	}

	handlers := api.NewHandlers(engine, profiles, catalog, stats)
	srv := api.NewServer(cfg, handlers)

	if err := api.ListenAndServe(srv); err != nil {
		log.Printf("Server stopped: %v", err)
		os.Exit(1)
	}
}
