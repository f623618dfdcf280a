package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/radii/pkg/editor"
	apperrors "github.com/matzehuels/radii/pkg/errors"
	"github.com/matzehuels/radii/pkg/radius"
	"github.com/matzehuels/radii/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string  // output file; "-" or empty writes to stdout
	format  string  // svg, png, json or css; inferred from output when empty
	overlay bool    // draw radius guides and labels
	shape   string  // preview box override: rectangle or square
	scale   float64 // PNG pixel density
	theme   string  // light or dark
}

// renderCommand renders the saved state as an annotated preview.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a preview of the saved state",
		Long: `Render the saved state as SVG, PNG, JSON geometry or a CSS rule.

With --overlay the preview carries the radius ellipses, guides along the box
edges and value labels for every corner.`,
		Example: `  radii render -o box.svg --overlay
  radii render -f png -o box.png --scale 3 --theme dark
  radii render -f json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := resolveFormat(opts.format, opts.output)
			if err != nil {
				return err
			}
			toFile := opts.output != "" && opts.output != "-"
			if toFile {
				if err := apperrors.ValidateOutputPath(opts.output, format); err != nil {
					return err
				}
			}

			cfg := c.config.Render
			flags := cmd.Flags()
			if flags.Changed("overlay") {
				cfg.Overlay = opts.overlay
			}
			if flags.Changed("scale") {
				cfg.Scale = opts.scale
			}
			if flags.Changed("theme") {
				cfg.Theme = opts.theme
			}
			ropts, err := cfg.options()
			if err != nil {
				return err
			}

			ed, s, err := c.openEditor(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			st := ed.State()
			if opts.shape != "" {
				shape, err := radius.ParseShape(opts.shape)
				if err != nil {
					return err
				}
				st.Shape = shape
			}

			prog := newProgress(c.Logger)
			data, err := render.Render(cmd.Context(), format, editor.Compute(&st), ropts)
			if err != nil {
				return err
			}

			if !toFile {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			if dir := filepath.Dir(opts.output); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("create output dir: %w", err)
				}
			}
			if err := os.WriteFile(opts.output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", opts.output, err)
			}
			prog.done(fmt.Sprintf("Rendered %s", strings.ToUpper(format)))
			printFile(opts.output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: svg (default), png, json, css")
	cmd.Flags().BoolVar(&opts.overlay, "overlay", false, "draw radius guides and labels")
	cmd.Flags().StringVar(&opts.shape, "shape", "", "preview shape: rectangle, square (default: saved shape)")
	cmd.Flags().Float64Var(&opts.scale, "scale", defaultScale, "PNG pixel density")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "color theme: light (default), dark")

	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(render.Formats, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("shape", cobra.FixedCompletions([]string{"rectangle", "square"}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

// resolveFormat picks the explicit format, else the output extension, else SVG.
func resolveFormat(format, output string) (string, error) {
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(output)), ".")
	}
	if format == "" {
		format = render.FormatSVG
	}
	format = strings.ToLower(format)
	if err := apperrors.ValidateFormat(format); err != nil {
		return "", err
	}
	return format, nil
}
