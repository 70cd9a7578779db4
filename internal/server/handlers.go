// Package server handles HTTP requests and middleware.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/woozymasta/imgcenter/internal/geo"

	"github.com/rs/zerolog/log"
)

type errorResponse struct {
	Error string `json:"error"`
}

// HandleCenter computes one image center from query parameters:
// lat, lon, azimuth, cx, cy, px, py, scale.
func (s *ServerContext) HandleCenter(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}

	in, err := parseInput(r.URL.Query())
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	center, err := s.Calculator.ImageCenter(in)
	if err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, geo.ErrInvalidScale) || errors.Is(err, geo.ErrCoordinateRange) {
			status = http.StatusBadRequest
		}
		log.Debug().Err(err).Msg("Center calculation rejected")
		writeJSON(w, status, errorResponse{Error: err.Error()})
		return
	}

	feature, err := geo.Feature(center, in.Point)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	w.Header().Set("Content-Type", "application/geo+json")
	w.WriteHeader(http.StatusOK)
	// Ignoring error as we cannot handle client disconnects
	_ = json.NewEncoder(w).Encode(feature)
}

// HandleHealth reports liveness.
func (s *ServerContext) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func parseInput(q url.Values) (geo.Input, error) {
	point, err := geo.NewCoordinate(q.Get("lat"), q.Get("lon"))
	if err != nil {
		return geo.Input{}, err
	}

	ints := make(map[string]int, 5)
	for _, name := range []string{"azimuth", "cx", "cy", "px", "py"} {
		v, err := strconv.Atoi(q.Get(name))
		if err != nil {
			return geo.Input{}, fmt.Errorf("parameter %q: %w", name, err)
		}
		ints[name] = v
	}

	scale, err := strconv.ParseFloat(q.Get("scale"), 64)
	if err != nil {
		return geo.Input{}, fmt.Errorf("parameter %q: %w", "scale", err)
	}

	return geo.Input{
		Point:    point,
		Azimuth:  geo.Azimuth(ints["azimuth"]),
		CenterPx: geo.PixelPoint{X: ints["cx"], Y: ints["cy"]},
		PointPx:  geo.PixelPoint{X: ints["px"], Y: ints["py"]},
		Scale:    scale,
	}, nil
}
