package chart

// Package chart draws pie-chart decorations onto an abstract 2D Surface.
// Geometry comes in as plain Arc values so the label placement does not
// depend on any particular chart or canvas library.
