// Package flex infers flex layout parameters (direction, wrap, gap,
// alignment) for sibling elements from their geometry alone, and
// computes pairwise spatial relationships used for composite widget
// placement. No explicit layout metadata exists in the input; every
// value is derived from bounding boxes.
package flex
