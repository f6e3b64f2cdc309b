package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/roughsketch/pkg/rough"
)

// optionFlags are the rough option flags shared by shape, draw, widget and
// explore. Only flags the user actually set become overrides.
type optionFlags struct {
	seed         int64
	roughness    float64
	bowing       float64
	fillStyle    string
	fillWeight   float64
	hachureAngle float64
	hachureGap   float64
	single       bool
	singleFill   bool
}

func (f *optionFlags) register(cmd *cobra.Command) {
	d := rough.Defaults(0)
	fs := cmd.Flags()
	fs.Int64Var(&f.seed, "seed", 0, "random seed in [0, 2^31)")
	fs.Float64Var(&f.roughness, "roughness", d.Roughness, "how far strokes wander from the ideal line")
	fs.Float64Var(&f.bowing, "bowing", d.Bowing, "how much straight lines bow")
	fs.StringVar(&f.fillStyle, "fill-style", string(d.FillStyle), "fill style: hachure, zigzag")
	fs.Float64Var(&f.fillWeight, "fill-weight", d.FillWeight, "fill stroke width")
	fs.Float64Var(&f.hachureAngle, "hachure-angle", d.HachureAngle, "hachure angle in degrees")
	fs.Float64Var(&f.hachureGap, "hachure-gap", d.HachureGap, "distance between hachure lines (<= 0 derives it from fill weight)")
	fs.BoolVar(&f.single, "single-stroke", false, "draw each outline once")
	fs.BoolVar(&f.singleFill, "single-stroke-fill", false, "draw each fill line once")
}

// overrides returns the flags the user set on cmd.
func (f *optionFlags) overrides(cmd *cobra.Command) rough.Overrides {
	var ov rough.Overrides
	changed := cmd.Flags().Changed
	if changed("seed") {
		s := rough.Seed(f.seed)
		ov.Seed = &s
	}
	if changed("roughness") {
		ov.Roughness = &f.roughness
	}
	if changed("bowing") {
		ov.Bowing = &f.bowing
	}
	if changed("fill-style") {
		s := rough.FillStyle(f.fillStyle)
		ov.FillStyle = &s
	}
	if changed("fill-weight") {
		ov.FillWeight = &f.fillWeight
	}
	if changed("hachure-angle") {
		ov.HachureAngle = &f.hachureAngle
	}
	if changed("hachure-gap") {
		ov.HachureGap = &f.hachureGap
	}
	if changed("single-stroke") {
		ov.DisableMultiStroke = &f.single
	}
	if changed("single-stroke-fill") {
		ov.DisableMultiStrokeFill = &f.singleFill
	}
	return ov
}

// resolve layers the config defaults and the set flags into options.
func (c *CLI) resolve(cmd *cobra.Command, f *optionFlags) (rough.Options, error) {
	ov := c.Config.Defaults.Layer(f.overrides(cmd))
	return rough.Resolve(0, rough.WithOverrides(ov))
}
