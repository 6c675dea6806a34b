package glyphgrid

import (
	"io"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/tsawler/glyphgrid/fetch"
)

// decodeOptions holds configuration for a decode run.
type decodeOptions struct {
	debug      bool
	timeout    time.Duration
	logger     *zap.Logger
	output     io.Writer
	httpClient *http.Client
}

// defaultOptions returns the default decode options.
func defaultOptions() decodeOptions {
	return decodeOptions{
		debug:   false,
		timeout: fetch.DefaultTimeout,
		logger:  nil, // resolved lazily by debugLogger
		output:  os.Stdout,
	}
}

// clone creates a copy of decodeOptions. All fields are value or shared
// handle types, so a field copy is sufficient.
func (o decodeOptions) clone() decodeOptions {
	return o
}

// debugLogger resolves the logger for a decode run. Debug mode without a
// configured logger gets a development logger; otherwise unset loggers
// are silenced.
func (o decodeOptions) debugLogger() *zap.Logger {
	if o.logger != nil {
		if o.debug {
			return o.logger
		}
		return o.logger.WithOptions(zap.IncreaseLevel(zap.InfoLevel))
	}
	if !o.debug {
		return zap.NewNop()
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return l
}
