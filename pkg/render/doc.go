// Package render turns an editor snapshot into a preview file.
//
// # Overview
//
// [Render] is the single entry point the CLI and the HTTP API use. It picks
// a sink from the [sink] subpackage by format name, maps [Options] onto that
// sink's functional options and reports timing to the observability render
// hooks.
//
//	snap := ed.Snapshot()
//	svg, err := render.Render(ctx, render.FormatSVG, snap, render.Options{Overlay: true})
//
// Supported formats are [FormatSVG], [FormatPNG], [FormatJSON] and
// [FormatCSS], the last being the plain declaration text.
//
// [sink]: github.com/matzehuels/radii/pkg/render/sink
package render
