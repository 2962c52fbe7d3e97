// Package upload stores card artwork on disk and serves it back by URL.
//
// Files are written under a single upload directory with random names, so
// an uploaded filename never collides and never leaks the original name
// into a path. Only image formats the renderers can embed are accepted:
// JPEG, PNG, GIF, WebP and SVG, up to 10 MB each.
package upload
