package middleware

import (
	stdhttp "net/http"
	"runtime/debug"
	"strings"

	perr "jejenorm/internal/platform/errors"
	"jejenorm/internal/platform/logger"
	pnet "jejenorm/internal/platform/net"
	phttp "jejenorm/internal/platform/net/http"
)

// RecoverJSON converts panics into a JSON 500 envelope and logs the stack with the request id
func RecoverJSON(next stdhttp.Handler) stdhttp.Handler {
	return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			// net/http uses this sentinel to abort a response on purpose
			if v == stdhttp.ErrAbortHandler {
				panic(v)
			}

			reqID := pnet.RequestID(r.Context())

			// format stack like chi recover
			stack := strings.Join(strings.Split(string(debug.Stack()), "\n"), "\n\t")
			logger.C(logger.WithRequest(r.Context(), reqID)).Error().
				Interface("panic", v).
				Msgf("panic recovered\n%s", stack)

			if reqID != "" {
				w.Header().Set("X-Request-ID", reqID)
			}
			phttp.JSON(w, stdhttp.StatusInternalServerError, panicEnvelope(r))
		}()
		next.ServeHTTP(w, r)
	})
}

func panicEnvelope(r *stdhttp.Request) phttp.Envelope {
	_, env := phttp.ErrorEnvelope(r, perr.PanicErrf("panic recovered"))
	return env
}
