package cluster

import (
	"math"
	"sort"

	"layerlens/model"
)

// Row is a horizontal band of clusters that overlap vertically.
type Row struct {
	// Clusters are the row members, left-to-right in merge order
	Clusters []Cluster

	// Bounds is the union of all member cluster bounds
	Bounds model.Bounds
}

// GroupIntoRows segments clusters into horizontal rows. Clusters are
// sorted by top coordinate, then merged into the open row when their
// vertical overlap with the running row bounds exceeds the configured
// fraction of the smaller height. A single greedy pass; ties are
// decided by encounter order.
func (cl *Clusterer) GroupIntoRows(clusters []Cluster) []Row {
	if len(clusters) == 0 {
		return nil
	}

	sorted := make([]Cluster, len(clusters))
	copy(sorted, clusters)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Bounds().Top < sorted[j].Bounds().Top
	})

	var rows []Row
	current := Row{
		Clusters: []Cluster{sorted[0]},
		Bounds:   sorted[0].Bounds(),
	}

	for _, c := range sorted[1:] {
		b := c.Bounds()
		overlap := current.Bounds.VerticalOverlap(b)
		smaller := math.Min(current.Bounds.Height(), b.Height())

		if overlap > cl.config.RowOverlapRatio*smaller {
			current.Clusters = append(current.Clusters, c)
			current.Bounds = current.Bounds.Union(b)
			continue
		}

		rows = append(rows, current)
		current = Row{Clusters: []Cluster{c}, Bounds: b}
	}

	return append(rows, current)
}
