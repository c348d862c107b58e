package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-nutri-track/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	respErr := NewResponseError(resp.StatusCode(), "", "")

	body := strings.TrimSpace(string(resp.Body()))

	var payload models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &payload); err == nil && payload.Message != "" {
		respErr.Message = payload.Message
		if payload.Error != nil {
			respErr.Detail = fmt.Sprint(payload.Error)
		}
		return respErr
	}

	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	respErr.Message = body
	return respErr
}
