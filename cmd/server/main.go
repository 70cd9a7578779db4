package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/woozymasta/imgcenter/internal/logger"
	"github.com/woozymasta/imgcenter/internal/server"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	Addr       string `short:"a" long:"addr"       env:"LISTEN_ADDRESS" description:"Address to listen on"                         default:"0.0.0.0"`
	Projection string `long:"projection"           env:"PROJECTION"     description:"Azimuth projection method" choice:"decomposition" choice:"matrix" default:"decomposition"`
	Port       int    `short:"p" long:"port"       env:"LISTEN_PORT"    description:"Port to listen on"                            default:"8080"`
	Precision  uint32 `short:"P" long:"precision"  env:"PRECISION"      description:"Significant digits for the final coordinates" default:"8"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	// Setup Logging
	opts.Logger.Setup()

	srvCtx, err := server.NewServerContext(opts.Precision, opts.Projection)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize server context")
	}

	// Routes
	mux := http.NewServeMux()
	mux.HandleFunc("/api/center", srvCtx.HandleCenter)
	mux.HandleFunc("/healthz", srvCtx.HandleHealth)

	listenAddr := fmt.Sprintf("%s:%d", opts.Addr, opts.Port)
	srv := &http.Server{
		Addr:              listenAddr,
		Handler:           server.RequestLogger(mux),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Info().
		Str("addr", listenAddr).
		Uint32("precision", opts.Precision).
		Str("projection", opts.Projection).
		Msg("Web server started")

	if err := srv.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
