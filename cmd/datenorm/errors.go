package main

import (
	"errors"
	"os"

	"github.com/rs/zerolog"

	"github.com/gyeh/datenorm/internal/exitcode"
	"github.com/gyeh/datenorm/internal/ingest"
)

// exitPipeline logs a pipeline failure and exits with the code for its phase.
func exitPipeline(log zerolog.Logger, err error, msg string) {
	var pe *ingest.PipelineError
	if !errors.As(err, &pe) {
		log.Error().Err(err).Msg(msg)
		os.Exit(exitcode.NormalizeError)
	}
	log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg(msg)
	switch pe.Phase {
	case "preflight", "inspect":
		os.Exit(exitcode.ValidationError)
	case "stage":
		os.Exit(exitcode.CopyError)
	default:
		os.Exit(exitcode.NormalizeError)
	}
}
