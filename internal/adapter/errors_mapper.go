package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-foodmap/models"
	"github.com/go-resty/resty/v2"
)

var statusKinds = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusNotFound:            ErrNotFound,
	http.StatusTooManyRequests:     ErrTooManyRequests,
	http.StatusInternalServerError: ErrInternalServerError,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	kind, ok := statusKinds[resp.StatusCode()]
	if !ok {
		kind = ErrUnexpectedStatus
	}

	respErr := &ResponseError{kind: kind, StatusCode: resp.StatusCode()}

	var fields models.FieldErrors
	if err := json.Unmarshal(resp.Body(), &fields); err == nil && len(fields) > 0 {
		respErr.Fields = fields
		return respErr
	}

	respErr.Body = strings.TrimSpace(string(resp.Body()))
	if respErr.Body == "" {
		respErr.Body = http.StatusText(resp.StatusCode())
	}
	return respErr
}
