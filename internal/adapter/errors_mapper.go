package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// statusSentinels maps HTTP status codes to the sentinel a [RequestError] unwraps to.
var statusSentinels = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusUnprocessableEntity: ErrUnprocessableEntity,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	sentinel, ok := statusSentinels[resp.StatusCode()]
	if !ok {
		sentinel = ErrUnexpectedStatus
	}

	return &RequestError{
		Status: resp.StatusCode(),
		Detail: extractDetail(resp.Body(), resp.StatusCode()),
		Err:    sentinel,
	}
}

// requestError classifies an error returned by resty. When a status line
// and body were received the failure happened while decoding, otherwise the
// request never got a response.
func requestError(op string, resp *resty.Response, err error) error {
	if resp != nil && resp.StatusCode() != 0 && resp.Body() != nil {
		return &RequestError{
			Status: resp.StatusCode(),
			Detail: MalformedResponseDetail,
			Err:    fmt.Errorf("%w: %s response: %w", ErrMalformedResponse, op, err),
		}
	}

	return &RequestError{
		Status: 0,
		Detail: DefaultErrorDetail,
		Err:    fmt.Errorf("%s request: %w", op, err),
	}
}

// extractDetail reads the "detail" field of an error body.
//
// The field is either a string or, for validation failures, a list of
// objects carrying "msg". Non-JSON bodies are returned as plain text.
func extractDetail(body []byte, status int) string {
	text := strings.TrimSpace(string(body))
	if text == "" {
		if s := http.StatusText(status); s != "" {
			return s
		}
		return DefaultErrorDetail
	}

	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return text
	}
	if len(payload.Detail) == 0 || string(payload.Detail) == "null" {
		return DefaultErrorDetail
	}

	var detail string
	if err := json.Unmarshal(payload.Detail, &detail); err == nil {
		if detail == "" {
			return DefaultErrorDetail
		}
		return detail
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(payload.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			if it.Msg != "" {
				msgs = append(msgs, it.Msg)
			}
		}
		if len(msgs) > 0 {
			return strings.Join(msgs, "; ")
		}
	}

	return DefaultErrorDetail
}
