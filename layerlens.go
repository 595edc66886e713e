// Package layerlens converts a flat or nested collection of
// positioned design layers into a hierarchical tree of typed
// structural groups with inferred flex layout. No layout metadata
// exists in the input; every structural decision is derived from
// geometry and a handful of content signals.
//
// Basic usage:
//
//	conv := layerlens.New()
//	tree, stats, err := conv.Convert(layers, canvasWidth)
//	if err != nil {
//	    // handle error
//	}
//
// With options:
//
//	conv := layerlens.New(
//	    layerlens.WithConfig(cfg),
//	    layerlens.WithIDGenerator(layerlens.NewSequentialIDs("n")),
//	)
package layerlens

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"layerlens/cluster"
	"layerlens/config"
	"layerlens/flex"
	"layerlens/model"
	"layerlens/widget"
)

// ErrMaxDepthExceeded indicates that cluster expansion hit the
// configured depth bound. Conversion fails closed rather than
// expanding pathological input indefinitely.
var ErrMaxDepthExceeded = errors.New("cluster expansion exceeded maximum depth")

// synthesizedConfidence is assigned to structural nodes the pipeline
// fabricates (row and column wrappers) rather than classifies.
const synthesizedConfidence = 0.5

// ConvertStats reports counts from one conversion.
type ConvertStats struct {
	// Leaves is the number of leaf layers after flattening
	Leaves int

	// Filtered is the number of leaves dropped for being invisible
	// or zero-area
	Filtered int

	// Clusters is the number of top-level proximity clusters
	Clusters int

	// Rows is the number of horizontal rows the clusters formed
	Rows int

	// Nodes is the total number of nodes in the output tree
	Nodes int

	// MaxDepth is the deepest cluster expansion reached
	MaxDepth int
}

// Converter drives the inference pipeline: flatten, filter, cluster,
// segment into rows, classify recursively, and assemble the output
// tree. A Converter is safe to reuse across conversions as long as
// its IDGenerator is.
type Converter struct {
	tuning   config.Config
	clusters *cluster.Clusterer
	flexer   *flex.Inferrer
	widgets  *widget.Inferrer
	ids      IDGenerator
}

// New creates a converter. Without options it uses default tuning and
// a sequential identifier generator.
func New(opts ...Option) *Converter {
	c := &Converter{
		tuning: config.Default(),
		ids:    NewSequentialIDs("node"),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.clusters = cluster.NewClustererWithConfig(c.tuning.ClusterConfig())
	c.flexer = flex.NewInferrerWithConfig(c.tuning.FlexConfig())
	c.widgets = widget.NewInferrerWithConfig(c.tuning.WidgetConfig())
	return c
}

// Convert runs the full pipeline over the given layers and returns a
// single-root output tree. Input nodes are never mutated.
//
// canvasWidth is accepted as a pipeline parameter but row and column
// segmentation currently derive solely from cluster geometry.
func (cv *Converter) Convert(layers []model.LayerNode, canvasWidth float64) (*model.OutputNode, ConvertStats, error) {
	var stats ConvertStats

	if err := model.ValidateLayers(layers); err != nil {
		return nil, stats, err
	}

	leaves := model.Flatten(layers)
	stats.Leaves = len(leaves)

	var kept []model.LayerNode
	for _, leaf := range leaves {
		if leaf.Visible && leaf.Bounds.IsValid() {
			kept = append(kept, leaf)
			continue
		}
		stats.Filtered++
	}

	clusters := cv.clusters.ClusterByProximity(kept)
	stats.Clusters = len(clusters)

	if len(clusters) == 0 {
		root := cv.newContainer("Container", model.Bounds{}, nil)
		root.Confidence = 0
		layout := model.DefaultLayout()
		root.Layout = &layout
		stats.Nodes = 1
		return root, stats, nil
	}

	rows := cv.clusters.GroupIntoRows(clusters)
	stats.Rows = len(rows)

	rowNodes := make([]*model.OutputNode, len(rows))
	for i, row := range rows {
		node, err := cv.convertRow(row, &stats)
		if err != nil {
			return nil, stats, err
		}
		rowNodes[i] = node
	}

	root := rowNodes[0]
	if len(rowNodes) > 1 {
		root = cv.wrapInColumn(rowNodes)
	}

	stats.Nodes = root.Count()
	return root, stats, nil
}

// convertRow builds the output for one horizontal row. A row holding
// a single cluster classifies directly; multiple clusters get a
// synthesized row container wrapping each cluster's classification.
func (cv *Converter) convertRow(row cluster.Row, stats *ConvertStats) (*model.OutputNode, error) {
	if len(row.Clusters) == 1 {
		return cv.classifyCluster(row.Clusters[0], stats)
	}

	children := make([]*model.OutputNode, len(row.Clusters))
	bounds := make([]model.Bounds, len(row.Clusters))
	for i, c := range row.Clusters {
		node, err := cv.classifyCluster(c, stats)
		if err != nil {
			return nil, err
		}
		children[i] = node
		bounds[i] = c.Bounds()
	}

	layout := cv.flexer.InferBounds(bounds)
	layout.Direction = model.DirectionRow
	layout.JustifyContent = "space-between"
	layout.AlignItems = "flex-start"

	node := cv.newContainer("Row", row.Bounds, children)
	node.Layout = &layout
	node.Confidence = synthesizedConfidence
	node.Repeating = cv.clusters.IsRepeatingPattern(row.Clusters)
	return node, nil
}

// wrapInColumn wraps multiple top-level rows in a synthesized column
// container spanning their union bounds.
func (cv *Converter) wrapInColumn(rows []*model.OutputNode) *model.OutputNode {
	bounds := make([]model.Bounds, len(rows))
	for i, r := range rows {
		bounds[i] = r.Bounds
	}

	layout := cv.flexer.InferBounds(bounds)
	layout.Direction = model.DirectionColumn
	layout.Wrap = model.WrapNone
	layout.JustifyContent = "flex-start"
	layout.AlignItems = "stretch"

	node := cv.newContainer("Column", model.UnionBounds(bounds), rows)
	node.Layout = &layout
	node.Confidence = synthesizedConfidence
	return node
}

// workItem is one entry of the explicit classification worklist. An
// item either classifies a cluster into dest, or, when finalize is
// set, completes a container node after its children resolved.
type workItem struct {
	c        cluster.Cluster
	depth    int
	dest     **model.OutputNode
	finalize *model.OutputNode
}

// classifyCluster classifies one cluster, expanding container results
// through sub-clustering. The recursion is expressed as an explicit
// work stack bounded by the configured maximum depth.
func (cv *Converter) classifyCluster(c cluster.Cluster, stats *ConvertStats) (*model.OutputNode, error) {
	var root *model.OutputNode
	stack := []workItem{{c: c, dest: &root}}

	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if item.finalize != nil {
			cv.finalizeContainer(item.finalize, item.c)
			continue
		}

		if item.depth > cv.tuning.MaxDepth {
			return nil, fmt.Errorf("depth %d: %w", item.depth, ErrMaxDepthExceeded)
		}
		if item.depth > stats.MaxDepth {
			stats.MaxDepth = item.depth
		}

		inference := cv.widgets.Infer(item.c.Layers)
		if inference.Type != model.WidgetContainer || len(item.c.Layers) <= 1 {
			*item.dest = cv.assembleNode(inference)
			continue
		}

		subs := cv.clusters.SubCluster(item.c.Layers)
		if len(subs) > 1 {
			node := cv.newContainer("Container", item.c.Bounds(), make([]*model.OutputNode, len(subs)))
			*item.dest = node

			// Children resolve before the finalize item pops.
			stack = append(stack, workItem{c: item.c, finalize: node})
			for i := len(subs) - 1; i >= 0; i-- {
				stack = append(stack, workItem{c: subs[i], depth: item.depth + 1, dest: &node.Children[i]})
			}
			continue
		}

		// Proximity could not split the cluster further; classify
		// each member layer individually.
		node := cv.newContainer("Container", item.c.Bounds(), nil)
		for _, layer := range item.c.Layers {
			child := cv.assembleNode(cv.widgets.Infer([]model.LayerNode{layer}))
			node.Children = append(node.Children, child)
		}
		layout := cv.flexer.Infer(item.c.Layers)
		node.Layout = &layout
		node.Confidence = inference.Confidence
		*item.dest = node
	}

	return root, nil
}

// finalizeContainer completes a container node once all of its
// children are classified: the group is re-evaluated against the
// children's widget types (so a section of finished widgets never
// collapses into a composite) and the layout is inferred from the
// children's bounds.
func (cv *Converter) finalizeContainer(node *model.OutputNode, c cluster.Cluster) {
	childTypes := make([]model.WidgetType, len(node.Children))
	bounds := make([]model.Bounds, len(node.Children))
	for i, child := range node.Children {
		childTypes[i] = child.Type
		bounds[i] = child.Bounds
	}

	inference := cv.widgets.InferGroup(c.Layers, childTypes)
	node.Type = inference.Type
	node.Confidence = inference.Confidence
	if inference.Type == model.WidgetContainer {
		layout := cv.flexer.InferBounds(bounds)
		node.Layout = &layout
	} else {
		node.Name = displayName(inference.Type)
		node.Composite = inference.Composite
		node.Layout = nil
	}
}

// assembleNode builds an output node from a widget inference. The
// node's bounds are the union of its source layers.
func (cv *Converter) assembleNode(inference model.WidgetInference) *model.OutputNode {
	bounds := make([]model.Bounds, len(inference.SourceLayers))
	for i, layer := range inference.SourceLayers {
		bounds[i] = layer.Bounds
	}

	node := &model.OutputNode{
		ID:         cv.ids.NextID(),
		Name:       displayName(inference.Type),
		Type:       inference.Type,
		Bounds:     model.UnionBounds(bounds),
		Confidence: inference.Confidence,
		Composite:  inference.Composite,
	}

	if len(inference.SourceLayers) == 1 && inference.SourceLayers[0].Name != "" {
		node.Name = inference.SourceLayers[0].Name
	}
	if inference.Type == model.WidgetContainer {
		layout := cv.flexer.Infer(inference.SourceLayers)
		node.Layout = &layout
	}

	return node
}

// newContainer creates a container node with a fresh identifier.
func (cv *Converter) newContainer(name string, bounds model.Bounds, children []*model.OutputNode) *model.OutputNode {
	return &model.OutputNode{
		ID:       cv.ids.NextID(),
		Name:     name,
		Type:     model.WidgetContainer,
		Bounds:   bounds,
		Children: children,
	}
}

// displayName derives a human-readable name from a widget type, for
// example "image-box" becomes "Image Box".
func displayName(t model.WidgetType) string {
	return cases.Title(language.English).String(strings.ReplaceAll(string(t), "-", " "))
}
