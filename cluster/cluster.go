package cluster

import (
	"layerlens/model"
)

// Config holds clustering configuration.
type Config struct {
	// Threshold is the maximum gap, in pixels, linking two layers
	// into the same cluster
	// Default: 20
	Threshold float64

	// SubClusterRatio scales Threshold when sub-clustering inside an
	// already-identified container
	// Default: 0.6
	SubClusterRatio float64

	// RowOverlapRatio is the minimum vertical overlap, as a fraction
	// of the smaller height, for two clusters to share a row
	// Default: 0.3
	RowOverlapRatio float64

	// PatternTolerance is the maximum deviation from the average
	// cluster size, as a fraction, for clusters to count as repeating
	// Default: 0.2
	PatternTolerance float64
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		Threshold:        20,
		SubClusterRatio:  0.6,
		RowOverlapRatio:  0.3,
		PatternTolerance: 0.2,
	}
}

// Cluster is a flat set of layers judged spatially related by the
// proximity search.
type Cluster struct {
	// Layers are the cluster members, in input order
	Layers []model.LayerNode
}

// Bounds returns the union bounding box of all members. An empty
// cluster yields the zero Bounds.
func (c Cluster) Bounds() model.Bounds {
	all := make([]model.Bounds, len(c.Layers))
	for i, layer := range c.Layers {
		all[i] = layer.Bounds
	}
	return model.UnionBounds(all)
}

// Size returns the number of member layers.
func (c Cluster) Size() int {
	return len(c.Layers)
}

// Clusterer groups layers into clusters by spatial proximity.
type Clusterer struct {
	config Config
}

// NewClusterer creates a clusterer with default configuration.
func NewClusterer() *Clusterer {
	return NewClustererWithConfig(DefaultConfig())
}

// NewClustererWithConfig creates a clusterer with custom configuration.
func NewClustererWithConfig(config Config) *Clusterer {
	return &Clusterer{config: config}
}

// Config returns the clusterer's configuration.
func (cl *Clusterer) Config() Config {
	return cl.config
}

// ClusterByProximity partitions layers into connected components,
// where two layers are connected when the minimum Euclidean gap
// between their bounds does not exceed the configured threshold.
// Every input layer lands in exactly one cluster.
func (cl *Clusterer) ClusterByProximity(layers []model.LayerNode) []Cluster {
	return cl.clusterAt(layers, cl.config.Threshold)
}

// SubCluster partitions layers with the tighter sub-clustering
// threshold used inside an already-identified container.
func (cl *Clusterer) SubCluster(layers []model.LayerNode) []Cluster {
	return cl.clusterAt(layers, cl.config.Threshold*cl.config.SubClusterRatio)
}

// clusterAt discovers connected components via breadth-first
// expansion from each unvisited layer, in input order.
func (cl *Clusterer) clusterAt(layers []model.LayerNode, threshold float64) []Cluster {
	if len(layers) == 0 {
		return nil
	}

	visited := make([]bool, len(layers))
	var clusters []Cluster

	for start := range layers {
		if visited[start] {
			continue
		}
		visited[start] = true

		members := []model.LayerNode{layers[start]}
		queue := []int{start}

		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]

			for i := range layers {
				if visited[i] {
					continue
				}
				if layers[current].Bounds.Gap(layers[i].Bounds) <= threshold {
					visited[i] = true
					members = append(members, layers[i])
					queue = append(queue, i)
				}
			}
		}

		clusters = append(clusters, Cluster{Layers: members})
	}

	return clusters
}
