package lookup

// Package lookup holds the fixed tables that decide which sources, extras,
// artist roles, features and torrent attributes apply to each content type.
// Every function is total and returns a fresh slice the caller may modify.
