// Package render draws card faces as SVG.
//
// Two renderers consume the same card data:
//
//   - [Preview] produces a single interactive card face with stable per-region
//     ids, so an editor can map a click on the SVG back to the style region
//     under the cursor.
//   - [PrintSheet] tiles every card of a game onto A4 pages for printing,
//     including the back faces of party cards.
//
// Neither renderer carries any styling of its own. Every color comes from
// [style.Resolve], every pixel size from [style.TextSizes] and
// [style.BorderRadius], and every font stack from [style.ResolveFont], so the
// preview and the print sheet can never drift apart for the same card.
package render
