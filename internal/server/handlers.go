package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/roughsketch/pkg/buildinfo"
	"github.com/matzehuels/roughsketch/pkg/errors"
	"github.com/matzehuels/roughsketch/pkg/pipeline"
	"github.com/matzehuels/roughsketch/pkg/rough"
	"github.com/matzehuels/roughsketch/pkg/scene"
	"github.com/matzehuels/roughsketch/pkg/widget"
)

// pathRequest is the body of /v1/primitive and /v1/fill. A missing seed
// means seed 0, so identical bodies always produce identical paths.
type pathRequest struct {
	Kind     rough.Kind      `json:"kind"`
	Geometry rough.Geometry  `json:"geometry"`
	Options  rough.Overrides `json:"options"`
	Seed     rough.Seed      `json:"seed"`
	Join     bool            `json:"join"`
}

type pathResponse struct {
	Ops    rough.OpSet `json:"ops"`
	Path   string      `json:"path"`
	Cached bool        `json:"cached"`
}

type healthResponse struct {
	Status string `json:"status"`
	buildinfo.Info
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Info: buildinfo.Get()})
}

func (s *Server) handlePrimitive(w http.ResponseWriter, r *http.Request) {
	req, opts, err := decodePathRequest(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	ops, hit, err := s.runner.Primitive(r.Context(), pipeline.PathRequest{Kind: req.Kind, Geometry: req.Geometry, Options: opts})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	join := req.Join && rough.IsClosed(req.Kind, req.Geometry)
	writeJSON(w, http.StatusOK, pathResponse{Ops: ops, Path: rough.Serialize(ops, join), Cached: hit})
}

func (s *Server) handleFill(w http.ResponseWriter, r *http.Request) {
	req, opts, err := decodePathRequest(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if req.Kind == "" && len(req.Geometry.Points) > 0 {
		req.Kind = rough.KindPolygon
	}
	ops, hit, err := s.runner.Fill(r.Context(), pipeline.PathRequest{Kind: req.Kind, Geometry: req.Geometry, Options: opts})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pathResponse{Ops: ops, Path: rough.Serialize(ops, false), Cached: hit})
}

func decodePathRequest(w http.ResponseWriter, r *http.Request) (pathRequest, rough.Options, error) {
	var req pathRequest
	if err := decode(w, r, &req); err != nil {
		return req, rough.Options{}, err
	}
	opts, err := rough.Resolve(req.Seed, rough.WithOverrides(req.Options))
	return req, opts, err
}

func (s *Server) handleScene(w http.ResponseWriter, r *http.Request) {
	var sc scene.Scene
	if err := decode(w, r, &sc); err != nil {
		s.fail(w, r, err)
		return
	}
	opts, err := outputOptions(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	opts.Scene = &sc
	s.render(w, r, opts)
}

func (s *Server) handleWidget(w http.ResponseWriter, r *http.Request) {
	var params widget.Params
	if r.ContentLength != 0 {
		if err := decode(w, r, &params); err != nil {
			s.fail(w, r, err)
			return
		}
	}
	opts, err := outputOptions(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	opts.Widget = chi.URLParam(r, "name")
	opts.WidgetParams = params
	s.render(w, r, opts)
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, opts pipeline.Options) {
	res, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	format := opts.Formats[0]
	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("X-Cache", cacheStatus(res.CacheInfo.RenderHit))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifacts[format])
}

var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatJSON: "application/json",
	pipeline.FormatPDF:  "application/pdf",
	pipeline.FormatPNG:  "image/png",
}

func cacheStatus(hit bool) string {
	if hit {
		return "hit"
	}
	return "miss"
}

// outputOptions reads the query parameters shared by the render routes:
// format, seed, stroke, stroke_width, background, class and join.
func outputOptions(r *http.Request) (pipeline.Options, error) {
	q := r.URL.Query()
	format := q.Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	opts := pipeline.Options{
		Formats:    []string{format},
		Stroke:     q.Get("stroke"),
		Background: q.Get("background"),
		Class:      q.Get("class"),
	}
	if v := q.Get("seed"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "invalid seed %q", v)
		}
		seed := rough.Seed(n)
		opts.Seed = &seed
	}
	if v := q.Get("stroke_width"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "invalid stroke_width %q", v)
		}
		opts.StrokeWidth = f
	}
	if v := q.Get("join"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "invalid join %q", v)
		}
		opts.Join = b
	}
	return opts, nil
}

// decode reads a bounded JSON body into v, rejecting unknown fields.
func decode(w http.ResponseWriter, r *http.Request, v any) error {
	if ct := r.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "application/json") {
		return errors.New(errors.ErrCodeInvalidInput, "unsupported content type %q", ct)
	}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body")
	}
	return nil
}
