package util

import (
	"github.com/bokysan/basecodec/internal/util/enc"
	"github.com/jessevdk/go-flags"
	log "github.com/sirupsen/logrus"
	"os"
)

const (
	// ErrData is returned when the input could not be decoded, as in sysexits.h EX_DATAERR
	ErrData = 65
	// ErrGeneric is returned for all other errors
	ErrGeneric = 99
)

// MustErrorNilOrExit will check the provided argument. If it's `nil` it will simply return. If it's
// not `nil`, it will log the error as `log.FatalLevel` and exit immediately with provided error code.
// Error code is unwrapped from `flags.Error` object. Malformed encoded input exits with ErrData. If it's a
// different kind of error, a generic error code - 99 - is returned
func MustErrorNilOrExit(err error) {
	if err == nil {
		return
	}

	if flagsError, ok := err.(*flags.Error); ok {
		if flagsError.Type == flags.ErrHelp {
			os.Exit(0)
			return
		}

		log.StandardLogger().WithError(err).Logf(log.FatalLevel, "Error: %+v", err)
		os.Exit(int(flagsError.Type))
	} else if enc.IsCorrupt(err) {
		log.StandardLogger().WithError(err).Logf(log.FatalLevel, "Invalid input: %v", err)
		os.Exit(ErrData)
	} else {
		log.StandardLogger().WithError(err).Logf(log.FatalLevel, "Error: %+v", err)
		os.Exit(ErrGeneric)
	}
}
