package ui

// Package ui contains the Fyne desktop glue: translations loaded with go-i18n,
// the compact theme, a chart.Surface backed by fyne canvas objects, and the
// dashboard window that renders the formatting helpers over AppContext state.
