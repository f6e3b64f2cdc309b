package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/roughsketch/pkg/errors"
	"github.com/matzehuels/roughsketch/pkg/pipeline"
	"github.com/matzehuels/roughsketch/pkg/rough"
)

type shapeOpts struct {
	optionFlags
	closed  bool
	fill    bool
	join    bool
	asJSON  bool
	noCache bool
}

// shapeCommand creates the shape command that prints the path data of one
// primitive.
func (c *CLI) shapeCommand() *cobra.Command {
	var opts shapeOpts

	cmd := &cobra.Command{
		Use:   "shape <kind> [numbers...]",
		Short: "Print the sketched path data of a single primitive",
		Long: `Print the sketched path data of a single primitive.

Arguments by kind:
  line        x1 y1 x2 y2
  rectangle   x y width height
  ellipse     cx cy width height
  circle      cx cy diameter
  arc         cx cy width height start stop   (radians)
  polygon     x1 y1 x2 y2 x3 y3 ...
  linearpath  x1 y1 x2 y2 ...`,
		Example: `  roughsketch shape rectangle 10 10 200 100 --seed 42
  roughsketch shape ellipse 100 100 150 80 --fill --fill-style zigzag`,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: completeKinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := rough.Kind(args[0])
			geo, err := parseGeometry(kind, args[1:], opts.closed)
			if err != nil {
				return err
			}
			o, err := c.resolve(cmd, &opts.optionFlags)
			if err != nil {
				return err
			}
			return c.runShape(cmd, kind, geo, o, &opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().BoolVar(&opts.closed, "closed", false, "close an arc through its centre")
	cmd.Flags().BoolVar(&opts.fill, "fill", false, "also print the fill path")
	cmd.Flags().BoolVar(&opts.join, "join", false, "join the passes of a closed outline into one subpath")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print the operations as JSON")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

type shapeOutput struct {
	Stroke     rough.OpSet `json:"stroke"`
	Fill       rough.OpSet `json:"fill,omitempty"`
	StrokePath string      `json:"stroke_path"`
	FillPath   string      `json:"fill_path,omitempty"`
}

func (c *CLI) runShape(cmd *cobra.Command, kind rough.Kind, geo rough.Geometry, o rough.Options, opts *shapeOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	req := pipeline.PathRequest{Kind: kind, Geometry: geo, Options: o}
	stroke, hit, err := runner.Primitive(ctx, req)
	if err != nil {
		return err
	}
	logger.Debug("generated outline", "kind", kind, "ops", len(stroke), "cached", hit)

	out := shapeOutput{Stroke: stroke, StrokePath: rough.Serialize(stroke, opts.join && rough.IsClosed(kind, geo))}
	if opts.fill {
		fill, hit, err := runner.Fill(ctx, req)
		if err != nil {
			return err
		}
		logger.Debug("generated fill", "kind", kind, "ops", len(fill), "cached", hit)
		out.Fill = fill
		out.FillPath = rough.Serialize(fill, false)
	}

	w := cmd.OutOrStdout()
	if opts.asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}
	if out.FillPath != "" {
		fmt.Fprintln(w, out.FillPath)
	}
	fmt.Fprintln(w, out.StrokePath)
	return nil
}

// arity is the number of numeric arguments each fixed-size kind takes.
var arity = map[rough.Kind]int{
	rough.KindLine:      4,
	rough.KindRectangle: 4,
	rough.KindEllipse:   4,
	rough.KindCircle:    3,
	rough.KindArc:       6,
}

// parseGeometry turns positional numbers into the geometry of kind.
func parseGeometry(kind rough.Kind, args []string, closed bool) (rough.Geometry, error) {
	if !kind.Valid() {
		return rough.Geometry{}, errors.New(errors.ErrCodeInvalidGeometry, "unknown primitive kind %q", kind)
	}
	nums := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return rough.Geometry{}, errors.New(errors.ErrCodeInvalidGeometry, "argument %d: %q is not a number", i+1, a)
		}
		nums[i] = v
	}

	if n, ok := arity[kind]; ok && len(nums) != n {
		return rough.Geometry{}, errors.New(errors.ErrCodeInvalidGeometry, "%s takes %d numbers, got %d", kind, n, len(nums))
	}

	switch kind {
	case rough.KindLine:
		return rough.Geometry{X: nums[0], Y: nums[1], X2: nums[2], Y2: nums[3]}, nil
	case rough.KindRectangle, rough.KindEllipse:
		return rough.Geometry{X: nums[0], Y: nums[1], Width: nums[2], Height: nums[3]}, nil
	case rough.KindCircle:
		return rough.Geometry{X: nums[0], Y: nums[1], Width: nums[2]}, nil
	case rough.KindArc:
		return rough.Geometry{X: nums[0], Y: nums[1], Width: nums[2], Height: nums[3], Start: nums[4], Stop: nums[5], Closed: closed}, nil
	}

	if len(nums)%2 != 0 {
		return rough.Geometry{}, errors.New(errors.ErrCodeInvalidGeometry, "%s takes x y pairs, got %d numbers", kind, len(nums))
	}
	pts := make([]rough.Point, len(nums)/2)
	for i := range pts {
		pts[i] = rough.Point{X: nums[2*i], Y: nums[2*i+1]}
	}
	return rough.Geometry{Points: pts}, nil
}
