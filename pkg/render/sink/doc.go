// Package sink provides output format renderers for the radius preview.
//
// # Overview
//
// A "sink" transforms a computed [geometry.Projection] into a final output
// format:
//
//   - SVG: vector preview drawn with ajstarks/svgo
//   - PNG: raster preview drawn with fogleman/gg
//   - JSON: the projected geometry for external tools
//
// # SVG Output
//
// [RenderSVG] draws the box as a single path whose corners are elliptical
// arcs of the effective (overlap-reduced) radii, filled with the theme's
// gradient. [WithOverlay] adds the annotation layer: dashed radius ellipses,
// guide lines along the edges and the value labels.
//
//	svg := sink.RenderSVG(proj, sink.WithOverlay(), sink.WithTitle(css))
//
// # PNG Output
//
// [RenderPNG] traces the same outline with gg and rasterizes it in-process;
// no external converter is needed.
//
//	png, err := sink.RenderPNG(proj, sink.WithScale(2), sink.WithPNGOverlay())
//
// # JSON Output
//
// [RenderJSON] exports per-corner pixel radii, centers and label visibility
// together with the CSS value when [WithJSONCSS] is given.
//
// [geometry.Projection]: github.com/matzehuels/radii/pkg/geometry.Projection
package sink
