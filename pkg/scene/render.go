package scene

import (
	"context"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/roughsketch/pkg/errors"
	"github.com/matzehuels/roughsketch/pkg/observability"
	"github.com/matzehuels/roughsketch/pkg/render"
	"github.com/matzehuels/roughsketch/pkg/rough"
)

// Render generates every shape of sc. Options are layered base, then the
// scene defaults, then the shape's own options; shape i gets the seed
// sc.Seed + i unless its options set one.
//
// Shapes are generated concurrently but the drawing keeps scene order and
// is identical for identical input.
func Render(ctx context.Context, sc *Scene, base rough.Options) (render.Drawing, error) {
	start := time.Now()
	id := sc.ID
	if id == "" {
		id = uuid.NewString()
	}

	items := make([]render.Item, len(sc.Shapes))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, s := range sc.Shapes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			item, err := renderShape(ctx, s, ShapeOptions(sc, base, i))
			if err != nil {
				return err
			}
			items[i] = item
			return nil
		})
	}
	err := g.Wait()
	observability.Render().OnScene(ctx, id, len(sc.Shapes), time.Since(start), err)
	if err != nil {
		return render.Drawing{}, err
	}

	return render.Drawing{ID: sc.ID, Width: sc.Width, Height: sc.Height, Items: items}, nil
}

// ShapeOptions resolves the options shape i of sc is drawn with.
func ShapeOptions(sc *Scene, base rough.Options, i int) rough.Options {
	o := base.Merge(sc.Defaults)
	o.Seed = rough.Seed((int64(sc.Seed) + int64(i)) % rough.MaxSeed)
	return o.Merge(sc.Shapes[i].Options)
}

func renderShape(ctx context.Context, s Shape, o rough.Options) (render.Item, error) {
	if err := o.Validate(); err != nil {
		return render.Item{}, errors.Wrap(errors.ErrCodeInvalidScene, err, "shape %s", s.ID)
	}
	gen := rough.New(o)

	start := time.Now()
	stroke, err := gen.Generate(s.Kind, s.Geometry)
	observability.Render().OnGenerate(ctx, string(s.Kind), len(stroke), time.Since(start), err)
	if err != nil {
		return render.Item{}, errors.Wrap(errors.GetCode(err), err, "shape %s", s.ID)
	}

	item := render.Item{
		ID:          s.ID,
		Kind:        s.Kind,
		Class:       s.Class,
		Stroke:      stroke,
		StrokeColor: s.StrokeColor,
		FillColor:   s.FillColor,
		StrokeWidth: s.StrokeWidth,
		FillWeight:  o.FillWeight,
		Closed:      rough.IsClosed(s.Kind, s.Geometry),
	}
	if s.Fill {
		start = time.Now()
		fill, err := gen.FillShape(s.Kind, s.Geometry)
		observability.Render().OnGenerate(ctx, string(s.Kind)+"-fill", len(fill), time.Since(start), err)
		if err != nil {
			return render.Item{}, errors.Wrap(errors.GetCode(err), err, "shape %s fill", s.ID)
		}
		item.Fill = fill
	}
	return item, nil
}
