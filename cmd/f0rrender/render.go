package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/justyntemme/frei0rgo/pkg/framework/debug"
	"github.com/justyntemme/frei0rgo/pkg/framework/process"
	f0r "github.com/justyntemme/frei0rgo/pkg/plugin"
)

const (
	FlagWidth  = "width"
	FlagHeight = "height"
	FlagTime   = "time"
	FlagParams = "params"
	FlagInput  = "input"
	FlagOutput = "output"
	FlagSet    = "set"
)

type renderOptions struct {
	width, height int
	time          float64
	params        string
	set           []string
	inputs        []string
	output        string
}

func registerRenderFlags(fs *pflag.FlagSet, opts *renderOptions) {
	fs.IntVar(&opts.width, FlagWidth, 64, "frame width, defaults to the size of the first input")
	fs.IntVar(&opts.height, FlagHeight, 64, "frame height, defaults to the size of the first input")
	fs.Float64Var(&opts.time, FlagTime, 0, "time in seconds passed to the update call")
	fs.StringVar(&opts.params, FlagParams, "", "YAML file mapping parameter names to values")
	fs.StringArrayVar(&opts.set, FlagSet, nil, "set a parameter, as name=value, after the parameter file")
	fs.StringSliceVarP(&opts.inputs, FlagInput, "i", nil, "input PNG, once per plugin input")
	fs.StringVarP(&opts.output, FlagOutput, "o", "", "output PNG")
}

func newRenderCommand() *cobra.Command {
	opts := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render {blend|color|shift} -o out.png [-i in.png]",
		Short: "Render one frame with a plugin",
		Example: `  f0rrender render color --params red.yaml -o red.png
  f0rrender render color --set color=#00ff00 -o green.png
  f0rrender render shift -i in.png -o out.png --params shift.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			sizeFromInput := !flags.Changed(FlagWidth) && !flags.Changed(FlagHeight)
			return render(args[0], opts, sizeFromInput)
		},
	}
	registerRenderFlags(cmd.Flags(), opts)
	_ = cmd.MarkFlagRequired(FlagOutput)
	return cmd
}

func render(name string, opts *renderOptions, sizeFromInput bool) error {
	d, err := load(name)
	if err != nil {
		return err
	}
	model := d.Info().ColorModel

	if want := d.Kind().Inputs(); len(opts.inputs) != want {
		return fmt.Errorf("%s plugin %q takes %d inputs, got %d", d.Kind(), name, want, len(opts.inputs))
	}
	inputs := make([]process.Frame, len(opts.inputs))
	for i, path := range opts.inputs {
		if inputs[i], err = readFrame(path, model); err != nil {
			return err
		}
	}

	width, height := opts.width, opts.height
	if sizeFromInput && len(inputs) > 0 {
		width, height = inputs[0].Width, inputs[0].Height
	}
	pixels := make([][]uint32, len(inputs))
	for i, in := range inputs {
		if in.Width != width || in.Height != height {
			return fmt.Errorf("input %s is %dx%d, want %dx%d", opts.inputs[i], in.Width, in.Height, width, height)
		}
		pixels[i] = in.Pixels
	}

	h, err := f0r.Construct(width, height)
	if err != nil {
		return err
	}
	defer f0r.Destruct(h)

	var assignments []assignment
	if opts.params != "" {
		if assignments, err = readParamFile(opts.params, d.Params()); err != nil {
			return err
		}
	}
	overrides, err := parseSetFlags(opts.set, d.Params())
	if err != nil {
		return err
	}
	if err := apply(h, append(assignments, overrides...)); err != nil {
		return err
	}

	out := process.Alloc(width, height)
	if err := f0r.Update(h, opts.time, out.Pixels, pixels...); err != nil {
		return err
	}
	debug.Info("rendered %dx%d frame with %q at t=%g", width, height, name, opts.time)
	return writeFrame(opts.output, out, model)
}
