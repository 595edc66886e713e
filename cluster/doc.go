// Package cluster groups loose layers into spatially related sets.
// It provides proximity-based connected-component clustering, greedy
// row segmentation, and repeating-pattern detection over cluster
// bounds. Clustering runs in O(n²) pairwise distance checks per call
// and keeps all state local to one invocation.
package cluster
