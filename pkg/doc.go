// Package pkg provides the core libraries of the Cardpress authoring backend.
//
// # Overview
//
// Cardpress stores card games and their cards, resolves sparse authored
// design settings into complete card styles, and renders card faces as SVG.
// The pkg directory is organized by concern:
//
//   - [style] - Style resolution and layout geometry (the core model)
//   - [card] - Game and card entities with validation
//   - [render] - The two SVG renderers (preview and print sheet)
//   - [storage] - Persistence (in-memory and MongoDB)
//   - [ai] - Balance-suggestion and effect-consultation client
//   - [cache] - Byte cache for AI responses (file, Redis, null)
//   - [upload] - Card artwork storage on disk
//   - [errors] - Structured error codes shared by CLI and API
//   - [httputil] - Retry helpers for upstream calls
//
// # Data flow
//
// A card carries sparse DesignSettings. Both renderers pass them through
// [style.Resolve] and the geometry lookups, so the interactive preview and
// the print sheet always agree on every color, size, and font for the same
// card. Nothing outside pkg/style carries style defaults.
package pkg
