// Package model defines the data types shared across the structure
// inference pipeline: geometry primitives, decoded layer records, and
// the inferred output tree.
//
// Layer records arrive from an upstream decoder and are never mutated
// by the engine. The output tree is built fresh on every conversion.
package model
