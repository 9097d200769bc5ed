package middleware

import (
	"net/http"
	"time"

	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog/log"
)

// ErrorResponse is the uniform error payload for every failure status.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// HandleError writes the error as an ErrorResponse with the given status.
func HandleError(resp *restful.Response, err error, status int) {
	resp.WriteHeaderAndEntity(status, ErrorResponse{Detail: err.Error()})
}

// WriteError writes a pre-formatted detail string with the given status.
func WriteError(resp *restful.Response, detail string, status int) {
	resp.WriteHeaderAndEntity(status, ErrorResponse{Detail: detail})
}

// Logger is a container filter that logs every request with its outcome.
func Logger(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
	now := time.Now()

	chain.ProcessFilter(req, resp)

	log.Info().
		Str("method", req.Request.Method).
		Str("path", req.Request.URL.Path).
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(now)).
		Msg("request handled")
}

// RecoverPanic converts a handler panic into a 500 instead of tearing down
// the connection.
func RecoverPanic(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Interface("panic", r).
				Str("path", req.Request.URL.Path).
				Msg("panic recovered")
			WriteError(resp, "Internal server error", http.StatusInternalServerError)
		}
	}()

	chain.ProcessFilter(req, resp)
}
