package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/noted-app/noted/models"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := failureMessage(resp.Body())

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return &ServerError{Status: ErrBadRequest, Message: body}
	case http.StatusUnauthorized:
		return &ServerError{Status: ErrUnauthorized, Message: body}
	case http.StatusForbidden:
		return &ServerError{Status: ErrForbidden, Message: body}
	case http.StatusNotFound:
		return &ServerError{Status: ErrNotFound, Message: body}
	case http.StatusConflict:
		return &ServerError{Status: ErrConflict, Message: body}
	case http.StatusBadGateway:
		return &ServerError{Status: ErrBadGateway, Message: body}
	case http.StatusInternalServerError:
		return &ServerError{Status: ErrInternalServerError, Message: body}
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return &ServerError{Status: fmt.Errorf("http %d", resp.StatusCode()), Message: body}
	}
}

// failureMessage extracts the server's {"message": ...} payload from a
// failure body, falling back to the raw body text when it is not JSON.
func failureMessage(body []byte) string {
	var m models.APIMessage
	if err := json.Unmarshal(body, &m); err == nil && m.Message != "" {
		return m.Message
	}
	return strings.TrimSpace(string(body))
}
