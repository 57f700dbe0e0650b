package httputils

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"mime"
	"net/http"

	"github.com/wgomg/textstat/internal/utils"
)

// MaxBodyBytes bounds the size of a decoded request body.
const MaxBodyBytes = 10 << 20

func DecodeJSON(r *http.Request, v any) error {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		return &HTTPError{
			Code:    http.StatusUnsupportedMediaType,
			Message: "Content-Type must be application/json",
		}
	}

	decoder := json.NewDecoder(io.LimitReader(r.Body, MaxBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return &HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Invalid JSON payload: " + err.Error(),
		}
	}
	return nil
}

// DecodeOptionalJSON decodes like DecodeJSON but accepts an empty body,
// sized or chunked, and then leaves v untouched.
func DecodeOptionalJSON(r *http.Request, v any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return nil
	}

	body := bufio.NewReader(r.Body)
	if _, err := body.Peek(1); err == io.EOF {
		return nil
	}
	r.Body = io.NopCloser(body)

	return DecodeJSON(r, v)
}

// LogRequestBody logs the raw body at debug level when raw body logging is
// enabled and leaves r.Body readable again.
func LogRequestBody(r *http.Request, logger *utils.Logger, reqID string) error {
	if !logger.RawBodyLog || r.Body == nil {
		return nil
	}

	bodyBytes, err := io.ReadAll(io.LimitReader(r.Body, MaxBodyBytes))
	if err != nil {
		return err
	}

	r.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

	logger.Debug(&reqID, "Raw request body: %s", string(bodyBytes))

	return nil
}
