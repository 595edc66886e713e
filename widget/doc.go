// Package widget classifies clusters of layers into typed widget
// hypotheses. Single layers classify by kind and typography;
// multi-layer clusters go through composition analysis and a
// first-match decision ladder for composite widgets (image-box,
// icon-box, icon-list, button), with a suppression rule keeping
// groups of finished widgets as plain containers.
package widget
