// Package render formats symbol descriptors as markdown.
//
// Two render paths coexist:
//
//   - Symbol renders one symbol on its own. It drops the "def " keyword
//     for methods and ends the docstring block without a trailing blank
//     line.
//   - Module renders a whole module inline for document assembly. It
//     always emits the def/class keyword and follows every docstring
//     block with a blank line.
//
// The divergence is inherited behavior that existing consumers of either
// path rely on. Do not unify the two without migrating both call sites;
// until then they stay separate, named functions.
//
// Assemble stitches per-module fragments into the final document and is
// the only place with ordering responsibility: module order follows tree
// traversal order, symbol order follows declaration order.
package render
