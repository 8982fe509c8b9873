package model

// Package model defines the closed vocabularies shared by the presentation
// helpers: content types, sources, features, extras, artist roles, the
// codec/resolution/channel values of the backend schema, and the plain
// records (edition groups, public site settings) the UI renders.
