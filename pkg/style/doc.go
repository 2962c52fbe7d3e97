// Package style is the single source of truth for card appearance.
//
// A card's design settings are authored sparsely: the editor only persists
// the fields a user actually touched, and older cards carry legacy
// single-field colors instead of the newer per-region override map. This
// package merges whatever is present into a complete, flat description that
// every renderer consumes identically.
//
// # Resolution
//
// [Resolve] turns a partial [DesignSettings] into a fully populated
// [CardStyle]. Per region the precedence is:
//
//  1. The explicit CardStyle override, when set.
//  2. A legacy field mapping (backgroundColor, textColor, header colors).
//  3. The hard-coded default.
//
// Resolve is pure and total: every input, including the zero value, yields a
// complete result, and feeding a resolved style back in as the override map
// is a fixed point.
//
// # Geometry
//
// [TextSizes], [BorderRadius], and [ResolveFont] map categorical tokens
// ("small", "xs", "gothic") to concrete metrics. Unknown tokens degrade to
// the documented default instead of failing, so renderers can call these on
// every paint without error handling.
//
// Renderers must never inline their own default tables; duplicated defaults
// are exactly the drift this package exists to prevent.
package style
