package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/MKhiriev/go-mission-hub/internal/logger"
)

// decodeLenient decodes the request body into a T. A body that cannot be
// read, is not valid JSON or is not an object is logged and decoded as the
// empty object. Members of the wrong type are left to T to drop.
func decodeLenient[T any](r *http.Request) T {
	var zero T
	log := logger.FromRequest(r)

	if r.Body == nil {
		return zero
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Warn().Err(err).Msg("request body could not be read, treating it as {}")
		return zero
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return zero
	}

	if !json.Valid(body) {
		log.Warn().Msg("malformed JSON body, treating it as {}")
		return zero
	}

	var v T
	if err = json.Unmarshal(body, &v); err != nil {
		log.Warn().Err(err).Msg("JSON body is not an object, treating it as {}")
		return zero
	}

	return v
}
