package path

import (
	"errors"
	"fmt"
	"log"

	"github.com/natevvv/campus-navigation/pkg/graph"
	"github.com/natevvv/campus-navigation/pkg/queue"
	"github.com/natevvv/campus-navigation/pkg/slice"
)

// Safety bound for the number of expansions of a single search
const DefaultMaxExpansions = 1000

var (
	ErrEndpointNotFound     = errors.New("endpoint not found")
	ErrNoRoute              = errors.New("no route exists")
	ErrSearchBudgetExceeded = errors.New("search budget exceeded")
	ErrPathReconstruction   = errors.New("path reconstruction anomaly")
	ErrInternal             = errors.New("internal search error")
)

type SearchKPIs struct {
	pqPops             int // store the amount of Pops which were performed on the priority queue for the computed search
	pqUpdates          int // store each update or push to the priority queue
	relaxationAttempts int // store the attempt for relaxed edges
	relaxedEdges       int // number of relaxed edges
	expansions         int // number of expanded (settled) nodes
}

type SearchOptions struct {
	useHeuristic  bool // flag indicating if heuristic (remaining distance) should be used. Without heuristic, this is plain Dijkstra
	maxExpansions int  // maximum number of expansions before the search is terminated
}

// AStar finds shortest paths with the straight-line distance to the destination as heuristic.
// The heuristic is only admissible as long as no chain of arcs is shorter than the straight line
// between its ends, which holds as long as arcs carry straight-line distances.
// Implements the Navigator interface.
type AStar struct {
	g       graph.Graph
	minHeap queue.MinHeap[*SearchItem] // open set, ordered by f = g + h

	origin      graph.NodeId // the origin of the current search
	destination graph.NodeId // the destination of the current search
	found       bool         // whether the destination was reached in the current search

	searchSpace map[graph.NodeId]*SearchItem // all discovered nodes with their best known distance and predecessor
	visited     map[graph.NodeId]bool        // closed set

	searchOptions SearchOptions
	searchKPIs    SearchKPIs

	debugLevel int // debug level for logging purpose
}

// Reset the kpi
func (kpi *SearchKPIs) Reset() {
	kpi.pqPops = 0
	kpi.pqUpdates = 0
	kpi.relaxationAttempts = 0
	kpi.relaxedEdges = 0
	kpi.expansions = 0
}

// Create a new AStar instance with the given graph g
func NewAStar(g graph.Graph) *AStar {
	options := SearchOptions{useHeuristic: true, maxExpansions: DefaultMaxExpansions}
	return &AStar{g: g, searchOptions: options}
}

// Compute the shortest path from the origin to the destination.
// It returns the length of the found path. If no path was found, it returns -1 and the reason
func (a *AStar) ComputeShortestPath(origin, destination graph.NodeId) (float64, error) {
	a.initializeSearch(origin, destination)

	if !a.g.HasNode(origin) {
		return -1, fmt.Errorf("%w: origin %v", ErrEndpointNotFound, origin)
	}
	if !a.g.HasNode(destination) {
		return -1, fmt.Errorf("%w: destination %v", ErrEndpointNotFound, destination)
	}

	if a.debugLevel >= 1 {
		log.Printf("New search: %v -> %v\n", origin, destination)
	}

	originItem := NewSearchItem(origin, 0, "", a.heuristicValue(origin))
	a.searchSpace[origin] = originItem

	if origin == destination {
		a.visited[origin] = true
		a.found = true
		return 0, nil
	}

	a.minHeap.Push(originItem)

	for a.minHeap.Len() > 0 {
		if a.searchKPIs.expansions >= a.searchOptions.maxExpansions {
			if a.debugLevel >= 1 {
				log.Printf("Exceeded limits - max expansions: %v, open nodes: %v\n", a.searchOptions.maxExpansions, a.minHeap.Len())
			}
			return -1, fmt.Errorf("%w: %v expansions from %v to %v", ErrSearchBudgetExceeded, a.searchKPIs.expansions, origin, destination)
		}

		currentNode := a.minHeap.Pop()
		a.searchKPIs.pqPops++
		if a.visited[currentNode.nodeId] {
			continue
		}

		a.settleNode(currentNode)
		if a.debugLevel >= 2 {
			log.Printf("Settling node %v, distance %v, priority %v\n", currentNode.nodeId, currentNode.distance, currentNode.Priority())
		}

		if currentNode.nodeId == destination {
			a.found = true
			if a.debugLevel >= 1 {
				log.Printf("Found path %v -> %v with distance %v\n", origin, destination, currentNode.distance)
			}
			return currentNode.distance, nil
		}

		a.relaxEdges(currentNode)
	}

	if a.debugLevel >= 1 {
		log.Printf("Finished search, no path found\n")
	}
	return -1, fmt.Errorf("%w: %v -> %v", ErrNoRoute, origin, destination)
}

// Get the path of a previous computation. This contains the nodeIds which lie on the path from source to destination.
// Returns an empty slice if no path was found
func (a *AStar) GetPath(origin, destination graph.NodeId) []graph.NodeId {
	path, err := a.reconstructPath(origin, destination)
	if err != nil {
		if a.debugLevel >= 1 {
			log.Printf("%v\n", err)
		}
		return make([]graph.NodeId, 0)
	}
	return path
}

// Walk the predecessors back from the destination.
// A walk longer than the number of nodes can only come from a corrupted predecessor chain
func (a *AStar) reconstructPath(origin, destination graph.NodeId) ([]graph.NodeId, error) {
	if !a.found || origin != a.origin || destination != a.destination {
		return nil, fmt.Errorf("%w: %v -> %v", ErrNoRoute, origin, destination)
	}
	if origin == destination {
		// origin and destination is the same -> path with one node is the result
		return []graph.NodeId{origin}, nil
	}

	path := make([]graph.NodeId, 0)
	for nodeId := destination; ; {
		path = append(path, nodeId)
		if len(path) > a.g.NodeCount() {
			return nil, fmt.Errorf("%w: path %v -> %v exceeds %v nodes", ErrPathReconstruction, origin, destination, a.g.NodeCount())
		}
		if nodeId == origin {
			break
		}
		item, ok := a.searchSpace[nodeId]
		if !ok || item.predecessor == "" {
			return nil, fmt.Errorf("%w: broken predecessor chain at %v", ErrPathReconstruction, nodeId)
		}
		nodeId = item.predecessor
	}
	// reverse path (to create the correct direction)
	slice.ReverseInPlace(path)
	return path, nil
}

// Returns the search space of a previous computation. This contains all items which were settled.
func (a *AStar) GetSearchSpace() []*SearchItem {
	searchSpace := make([]*SearchItem, 0, len(a.visited))
	for _, nodeId := range a.g.GetNodeIds() {
		if a.visited[nodeId] {
			searchSpace = append(searchSpace, a.searchSpace[nodeId])
		}
	}
	return searchSpace
}

// Initialize a new search
// This resets the search space and visited nodes (and all other leftovers of a previous search)
func (a *AStar) initializeSearch(origin, destination graph.NodeId) {
	if a.debugLevel >= 2 {
		log.Printf("Initialize new search, origin: %v\n", origin)
	}
	a.origin = origin
	a.destination = destination
	a.found = false
	a.searchSpace = make(map[graph.NodeId]*SearchItem)
	a.visited = make(map[graph.NodeId]bool)
	a.searchKPIs.Reset()
	a.minHeap = *queue.NewMinHeap[*SearchItem](nil)
}

// Settle the given node item
func (a *AStar) settleNode(node *SearchItem) {
	a.searchKPIs.expansions++
	a.visited[node.nodeId] = true
}

// Relax the Edges for the given node item and add the new nodes to the open set
func (a *AStar) relaxEdges(node *SearchItem) {
	for _, arc := range a.g.GetArcsFrom(node.nodeId) {
		a.searchKPIs.relaxationAttempts++
		successor := arc.Destination()

		if a.visited[successor] {
			continue
		}

		if a.debugLevel >= 3 {
			log.Printf("Relax Edge %v -> %v\n", node.nodeId, successor)
		}

		cost := node.distance + arc.Cost()
		if a.searchSpace[successor] == nil {
			nextNode := NewSearchItem(successor, cost, node.nodeId, a.heuristicValue(successor))
			a.searchSpace[successor] = nextNode
			a.minHeap.Push(nextNode)
			a.searchKPIs.pqUpdates++
		} else if cost < a.searchSpace[successor].distance {
			item := a.searchSpace[successor]
			item.distance = cost
			item.predecessor = node.nodeId
			a.minHeap.PushOrUpdate(item)
			a.searchKPIs.pqUpdates++
		}
		a.searchKPIs.relaxedEdges++
	}
}

// heuristic value (straight-line distance) from the node to the destination of the current search.
// Returns 0 if the heuristic is disabled
func (a *AStar) heuristicValue(nodeId graph.NodeId) float64 {
	if !a.searchOptions.useHeuristic {
		return 0
	}
	node, target := a.g.GetNode(nodeId), a.g.GetNode(a.destination)
	if node == nil || target == nil {
		return 0
	}
	return node.DistanceTo(*target)
}

// Specify whether a heuristic for path finding should be used
func (a *AStar) SetUseHeuristic(useHeuristic bool) {
	a.searchOptions.useHeuristic = useHeuristic
}

// Set the maximum number of expansions before the search is terminated.
// Values below 1 restore the default
func (a *AStar) SetMaxExpansions(maxExpansions int) {
	if maxExpansions < 1 {
		maxExpansions = DefaultMaxExpansions
	}
	a.searchOptions.maxExpansions = maxExpansions
}

// Returns the amount of priority queue/heap pops which were performed during the search
func (a *AStar) GetPqPops() int { return a.searchKPIs.pqPops }

// Get the number of relaxed edges
func (a *AStar) GetEdgeRelaxations() int { return a.searchKPIs.relaxedEdges }

// Get the number of attempted edge relaxations (some may early terminated)
func (a *AStar) GetRelaxationAttempts() int { return a.searchKPIs.relaxationAttempts }

// Get the number of pq updates
func (a *AStar) GetPqUpdates() int { return a.searchKPIs.pqUpdates }

// Get the number of expanded nodes
func (a *AStar) GetExpansions() int { return a.searchKPIs.expansions }

// Get the used graph
func (a *AStar) GetGraph() graph.Graph { return a.g }

// Set the debug level to show different debug messages.
// If it is 0, no debug messages are printed
func (a *AStar) SetDebugLevel(level int) {
	a.debugLevel = level
}
