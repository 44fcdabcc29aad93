package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/application/services/predictive"
)

// ErrModelUnavailable is returned when the model service has no trained model loaded
var ErrModelUnavailable = errors.New("RUL model unavailable")

type rulRequest struct {
	TemperatureC float64 `json:"temperature_c"`
	VibrationMmS float64 `json:"vibration_mm_s"`
}

type rulResponse struct {
	RULDays *float64 `json:"rul_days"`
}

// HTTPClient calls a remaining-useful-life model served over HTTP.
// It posts {"temperature_c", "vibration_mm_s"} to <url>/rul and expects
// {"rul_days"} back.
type HTTPClient struct {
	url    string
	client *http.Client
}

// NewHTTPClient creates a new HTTPClient. A non-positive timeout means no timeout.
func NewHTTPClient(url string, timeout time.Duration) *HTTPClient {
	c := &http.Client{}
	if timeout > 0 {
		c.Timeout = timeout
	}
	return &HTTPClient{url: strings.TrimSuffix(url, "/"), client: c}
}

// Verify interface compliance
var _ predictive.RULPredictor = (*HTTPClient)(nil)

// PredictRUL returns the predicted remaining useful life in days
func (c *HTTPClient) PredictRUL(ctx context.Context, temperatureC, vibrationMmS float64) (float64, error) {
	requestBody, err := json.Marshal(rulRequest{TemperatureC: temperatureC, VibrationMmS: vibrationMmS})
	if err != nil {
		return 0, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+"/rul", bytes.NewBuffer(requestBody))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusServiceUnavailable:
		return 0, ErrModelUnavailable
	default:
		return 0, fmt.Errorf("failed to predict RUL: status code %d", resp.StatusCode)
	}

	var out rulResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, fmt.Errorf("failed to decode response body: %w", err)
	}
	if out.RULDays == nil {
		return 0, fmt.Errorf("failed to predict RUL: response has no rul_days")
	}
	return *out.RULDays, nil
}
