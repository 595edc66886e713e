package cluster

import "math"

// IsRepeatingPattern reports whether the clusters form a repeating
// pattern: at least two clusters whose bounding widths and heights
// all fall within the configured tolerance of the cross-cluster
// averages. The result is used only to annotate output, never to
// alter structural decisions.
func (cl *Clusterer) IsRepeatingPattern(clusters []Cluster) bool {
	if len(clusters) < 2 {
		return false
	}

	var sumW, sumH float64
	for _, c := range clusters {
		b := c.Bounds()
		sumW += b.Width()
		sumH += b.Height()
	}
	avgW := sumW / float64(len(clusters))
	avgH := sumH / float64(len(clusters))

	for _, c := range clusters {
		b := c.Bounds()
		if math.Abs(b.Width()-avgW) > cl.config.PatternTolerance*avgW {
			return false
		}
		if math.Abs(b.Height()-avgH) > cl.config.PatternTolerance*avgH {
			return false
		}
	}
	return true
}
