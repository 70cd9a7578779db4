package server

import (
	"github.com/woozymasta/imgcenter/internal/geo"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ServerContext holds dependencies for request handlers.
type ServerContext struct {
	Calculator geo.Calculator
}

// NewServerContext initializes the context with a calculator using the given
// precision and projection. Every calculation step is logged at trace level.
func NewServerContext(precision uint32, projection string) (*ServerContext, error) {
	p, err := geo.ParseProjection(projection)
	if err != nil {
		return nil, err
	}

	log.Info().
		Uint32("precision", precision).
		Str("projection", string(p)).
		Msg("Server context initialized")

	return &ServerContext{
		Calculator: geo.Calculator{
			Precision:  precision,
			Projection: p,
			Tracer:     geo.LogTracer{Logger: log.Logger, Level: zerolog.TraceLevel},
		},
	}, nil
}
