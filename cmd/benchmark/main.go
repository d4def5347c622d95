// Command benchmark compares the A* search against plain Dijkstra on a
// preprocessed graph: random origin/destination pairs per profile, checking
// that both find equal-cost routes and reporting the speed difference.
package main

import (
	"context"
	"flag"
	"log"
	"math"
	"math/rand"
	"time"

	"access_router/pkg/graph"
	"access_router/pkg/profile"
	"access_router/pkg/routing"
)

func main() {
	graphPath := flag.String("graph", "walkways.bin", "Path to preprocessed graph binary")
	pairs := flag.Int("pairs", 100, "Random origin/destination pairs per profile")
	seed := flag.Int64("seed", 1, "Random seed for pair selection")
	profileID := flag.String("profile", "", "Benchmark a single profile (default: all)")
	flag.Parse()

	log.Printf("Loading graph from %s...", *graphPath)
	g, err := graph.ReadBinary(*graphPath)
	if err != nil {
		log.Fatalf("Failed to load graph: %v", err)
	}
	log.Printf("Loaded: %d nodes, %d edges", g.NumNodes(), g.NumEdges())

	profiles, err := profile.Default()
	if err != nil {
		log.Fatalf("Failed to load profiles: %v", err)
	}

	engine := routing.NewEngine(g, profiles)
	ctx := context.Background()

	for _, p := range profiles.List() {
		if *profileID != "" && p.ID != *profileID {
			continue
		}
		runProfile(ctx, engine, g, p.ID, *pairs, *seed)
	}
}

func runProfile(ctx context.Context, engine *routing.Engine, g *graph.Graph, profileID string, pairs int, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	n := g.NumNodes()

	var astarTotal, dijkstraTotal time.Duration
	var routed, noRoute, mismatches int

	for i := 0; i < pairs; i++ {
		origin := graph.NodeID(rng.Intn(int(n)))
		dest := graph.NodeID(rng.Intn(int(n)))

		t0 := time.Now()
		a, errA := engine.FindRoute(ctx, routing.Query{Origin: origin, Dest: dest, Profile: profileID})
		astarTotal += time.Since(t0)

		t0 = time.Now()
		d, errD := engine.FindRoute(ctx, routing.Query{Origin: origin, Dest: dest, Profile: profileID, DisableHeuristic: true})
		dijkstraTotal += time.Since(t0)

		switch {
		case errA != nil && errD != nil:
			noRoute++
		case errA != nil || errD != nil:
			mismatches++
			log.Printf("MISMATCH %s %d->%d: astar err=%v dijkstra err=%v", profileID, origin, dest, errA, errD)
		case math.Abs(a.Cost-d.Cost) > 1e-9:
			mismatches++
			log.Printf("MISMATCH %s %d->%d: astar cost=%.3f dijkstra cost=%.3f", profileID, origin, dest, a.Cost, d.Cost)
		default:
			routed++
		}
	}

	avg := func(total time.Duration) time.Duration {
		if pairs == 0 {
			return 0
		}
		return (total / time.Duration(pairs)).Round(time.Microsecond)
	}

	speedup := float64(dijkstraTotal) / float64(astarTotal)
	log.Printf("%-12s routed=%d no_route=%d mismatches=%d astar_avg=%s dijkstra_avg=%s speedup=%.2fx",
		profileID, routed, noRoute, mismatches, avg(astarTotal), avg(dijkstraTotal), speedup)
}
