package graph

import (
	"container/heap"
	"freight-dispatch-service/internal/domain"
	"math"
)

// Distance of a location that cannot be reached from the source.
const Unreachable = math.MaxInt

// Single-source shortest distances and predecessors.
type ShortestPaths struct {
	Source       domain.Location
	Distances    map[domain.Location]int
	Predecessors map[domain.Location]domain.Location
}

// Distance returns the shortest distance to l, or Unreachable.
func (sp *ShortestPaths) Distance(l domain.Location) int {
	d, ok := sp.Distances[l]
	if !ok {
		return Unreachable
	}
	return d
}

func (sp *ShortestPaths) Reachable(l domain.Location) bool {
	return sp.Distance(l) != Unreachable
}

type queueItem struct {
	dist int
	loc  domain.Location
	seq  int
}

// Min-heap on distance; equal distances pop in insertion order.
type priorityQueue []queueItem

func (q priorityQueue) Len() int { return len(q) }
func (q priorityQueue) Less(i, j int) bool {
	if q[i].dist != q[j].dist {
		return q[i].dist < q[j].dist
	}
	return q[i].seq < q[j].seq
}
func (q priorityQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *priorityQueue) Push(x any)   { *q = append(*q, x.(queueItem)) }
func (q *priorityQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// Dijkstra computes shortest paths from source over g.
//
// The queue has no decrease-key: a location may be queued several times and
// entries whose distance is worse than the best known one are skipped when popped.
// Unknown sources have no neighbors and reach only themselves.
func Dijkstra(g *RouteGraph, source domain.Location) *ShortestPaths {
	sp := &ShortestPaths{
		Source:       source,
		Distances:    make(map[domain.Location]int, len(g.locations)+1),
		Predecessors: make(map[domain.Location]domain.Location, len(g.locations)),
	}
	for _, l := range g.locations {
		sp.Distances[l] = Unreachable
	}
	sp.Distances[source] = 0

	seq := 0
	pq := &priorityQueue{{dist: 0, loc: source, seq: seq}}
	for pq.Len() > 0 {
		cur := heap.Pop(pq).(queueItem)
		if cur.dist > sp.Distances[cur.loc] {
			continue
		}

		for _, e := range g.Neighbors(cur.loc) {
			candidate := cur.dist + e.Duration
			if candidate < sp.Distance(e.To) {
				sp.Distances[e.To] = candidate
				sp.Predecessors[e.To] = cur.loc
				seq++
				heap.Push(pq, queueItem{dist: candidate, loc: e.To, seq: seq})
			}
		}
	}

	return sp
}
