package graph

import "freight-dispatch-service/internal/domain"

// ReconstructPath walks predecessors back from target to source.
// The caller must check that target is reachable first; an unreachable
// target yields (nil, false) instead of a path.
func ReconstructPath(sp *ShortestPaths, target domain.Location) ([]domain.Location, bool) {
	if !sp.Reachable(target) {
		return nil, false
	}

	path := []domain.Location{target}
	for cur := target; cur != sp.Source; {
		prev, ok := sp.Predecessors[cur]
		if !ok {
			return nil, false
		}
		path = append(path, prev)
		cur = prev
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}
