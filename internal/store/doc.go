// Package store holds the cross-component UI state: unread notification
// counters and the public site settings. Both live on an AppContext that is
// created at startup and passed to whatever needs it.
package store
