package main

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/natevvv/campus-navigation/pkg/graph"
	p "github.com/natevvv/campus-navigation/pkg/graph/path"
	"github.com/spf13/cobra"
)

var (
	amountTargets int
	benchmarkSeed int64
)

var benchmarkCmd = &cobra.Command{
	Use:   "benchmark",
	Short: "Compare A* and Dijkstra on random point pairs of the registry",
	RunE:  runBenchmark,
}

func init() {
	benchmarkCmd.Flags().IntVarP(&amountTargets, "targets", "n", 100, "How many random targets should get created")
	benchmarkCmd.Flags().Int64Var(&benchmarkSeed, "seed", 1, "Seed of the random targets")
	rootCmd.AddCommand(benchmarkCmd)
}

func runBenchmark(cmd *cobra.Command, args []string) error {
	snapshot, err := loadSnapshot()
	if err != nil {
		return err
	}
	g := graph.Build(snapshot.Points())
	nodes := g.GetNodeIds()
	if len(nodes) == 0 {
		return fmt.Errorf("registry %v has no points", cfg.Registry)
	}

	astar := p.NewAStar(g)
	astar.SetMaxExpansions(cfg.Search.MaxExpansions)
	dijkstra := p.NewAStar(g)
	dijkstra.SetUseHeuristic(false)
	dijkstra.SetMaxExpansions(cfg.Search.MaxExpansions)

	random := rand.New(rand.NewSource(benchmarkSeed))
	var astarTime, dijkstraTime time.Duration
	astarExpansions, dijkstraExpansions := 0, 0
	failures, mismatches := 0, 0

	for i := 0; i < amountTargets; i++ {
		origin := nodes[random.Intn(len(nodes))]
		destination := nodes[random.Intn(len(nodes))]

		length, elapsed, expansions, err := measure(astar, origin, destination)
		astarTime += elapsed
		astarExpansions += expansions

		referenceLength, elapsed, expansions, referenceErr := measure(dijkstra, origin, destination)
		dijkstraTime += elapsed
		dijkstraExpansions += expansions

		if err != nil || referenceErr != nil {
			failures++
			if (err == nil) != (referenceErr == nil) {
				fmt.Printf("Results differ for %v -> %v: %v / %v\n", origin, destination, err, referenceErr)
				mismatches++
			}
			continue
		}
		if math.Abs(length-referenceLength) > 1e-6 {
			fmt.Printf("Wrong length for %v -> %v. Is %v, should be %v\n", origin, destination, length, referenceLength)
			mismatches++
		}
	}

	fmt.Printf("[TIME-AStar] = %s, %v expansions\n", astarTime, astarExpansions)
	fmt.Printf("[TIME-Dijkstra] = %s, %v expansions\n", dijkstraTime, dijkstraExpansions)
	fmt.Printf("%v of %v searches found no path, %v mismatches\n", failures, amountTargets, mismatches)
	if mismatches > 0 {
		return fmt.Errorf("%v searches differ from the reference", mismatches)
	}
	return nil
}

// Run a single search. Returns the length, the elapsed time and the number of expanded nodes
func measure(navigator p.Navigator, origin, destination graph.NodeId) (float64, time.Duration, int, error) {
	start := time.Now()
	length, err := navigator.ComputeShortestPath(origin, destination)
	return length, time.Since(start), len(navigator.GetSearchSpace()), err
}
