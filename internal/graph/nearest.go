package graph

import "freight-dispatch-service/internal/domain"

// Nearest returns the reachable candidate with the smallest distance.
// Ties go to whichever candidate comes first; callers must not depend on which.
func Nearest(sp *ShortestPaths, candidates []domain.Location) (domain.Location, bool) {
	var (
		best     domain.Location
		bestDist = Unreachable
		found    bool
	)
	for _, c := range candidates {
		d := sp.Distance(c)
		if d == Unreachable {
			continue
		}
		if !found || d < bestDist {
			best, bestDist, found = c, d, true
		}
	}
	return best, found
}
