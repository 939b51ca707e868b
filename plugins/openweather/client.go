// Package openweather provides the OpenWeatherMap current-weather
// client and the get_weather tool built on it.
package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/firebase/genkit/go/genkit"

	"github.com/ebalda/wayfarer/log"
	"github.com/ebalda/wayfarer/tools"
)

const (
	// DefaultBaseURL is the OpenWeatherMap current-weather API root.
	DefaultBaseURL = "https://api.openweathermap.org/data/2.5"

	// DefaultTimeoutSeconds caps each request end to end.
	DefaultTimeoutSeconds = 10

	retryBaseDelay = 200 * time.Millisecond
)

// Client handles OpenWeatherMap API requests
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	apiKey     string
	maxRetries int
}

// NewClient creates a new OpenWeatherMap client and registers the
// get_weather tool. maxRetries is the number of extra attempts a
// transient failure gets; 0 keeps every call single-shot.
func NewClient(apiKey, baseURL string, timeoutSeconds, maxRetries int, gk *genkit.Genkit, registry *tools.Registry) *Client {
	if apiKey == "" {
		log.Warn(context.Background(), "[Weather] OpenWeatherMap API key is empty, get_weather will not work properly")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeoutSeconds <= 0 {
		timeoutSeconds = DefaultTimeoutSeconds
	}
	if maxRetries < 0 {
		maxRetries = 0
	}

	c := &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: time.Duration(timeoutSeconds) * time.Second,
		},
		apiKey:     apiKey,
		maxRetries: maxRetries,
	}

	c.registerTools(gk, registry)

	return c
}

// Report is the tool payload for a weather lookup. Either the weather
// fields or Error is populated, never both.
type Report struct {
	City         string       `json:"city"`
	TemperatureC float64      `json:"temperature"`
	TemperatureF float64      `json:"temperature_f"`
	Conditions   string       `json:"conditions"`
	Humidity     int          `json:"humidity"`
	WindSpeed    float64      `json:"wind_speed"`
	Pressure     float64      `json:"pressure"`
	Error        *tools.Error `json:"error,omitempty"`
}

// currentResponse mirrors the slice of the current-weather JSON this
// client consumes. Pointer fields keep "absent" distinguishable from a
// zero value so missing keys can be reported precisely.
type currentResponse struct {
	Main *struct {
		Temp     *float64 `json:"temp"`
		Humidity *int     `json:"humidity"`
		Pressure *float64 `json:"pressure"`
	} `json:"main"`
	Weather []struct {
		Main        string  `json:"main"`
		Description *string `json:"description"`
	} `json:"weather"`
	Wind *struct {
		Speed *float64 `json:"speed"`
	} `json:"wind"`
}

// statusError is a non-success HTTP response, kept as an error so the
// retry and classification layers can inspect the code.
type statusError struct {
	Code int
	Body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("status %d: %s", e.Code, e.Body)
}

// CurrentWeather fetches current conditions for a city. Failures come
// back as a classified *tools.Error so the tool layer can embed them
// in its payload unchanged.
func (c *Client) CurrentWeather(ctx context.Context, city string) (*Report, error) {
	requestURL := fmt.Sprintf("%s/weather?q=%s&appid=%s&units=metric",
		c.BaseURL, url.QueryEscape(city), url.QueryEscape(c.apiKey))

	log.Infof(ctx, "[Weather] Fetching weather for %s", city)

	resp, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		return http.NewRequestWithContext(ctx, "GET", requestURL, nil)
	})
	if err != nil {
		toolErr := classify(err)
		log.Errorf(ctx, "[Weather] Request for %s failed: %s", city, toolErr.Message)
		return nil, toolErr
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, tools.NewError(tools.ErrorKindNetwork, "Network error: %v", err)
	}

	var parsed currentResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		log.Errorf(ctx, "[Weather] Malformed response for %s: %v", city, err)
		return nil, tools.NewError(tools.ErrorKindParse, "Could not parse weather data: %v", err)
	}

	report, err := buildReport(city, &parsed)
	if err != nil {
		log.Errorf(ctx, "[Weather] Incomplete response for %s: %v", city, err)
		return nil, err
	}

	log.Debugf(ctx, "[Weather] %s: %.1f°C, %s", city, report.TemperatureC, report.Conditions)
	return report, nil
}

// do sends the request and folds any non-success status into a
// statusError so the retry logic can branch on the code.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, &statusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(body)),
		}
	}
	return resp, nil
}

// doWithRetry retries transient failures (network errors, 429 and 5xx
// responses) with exponential backoff while honoring context
// cancellation. With maxRetries == 0 it degenerates to a single do.
func (c *Client) doWithRetry(ctx context.Context, makeReq func() (*http.Request, error)) (*http.Response, error) {
	attempts := c.maxRetries + 1
	backoff := retryBaseDelay

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		req, err := makeReq()
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		resp, err := c.do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if attempt == attempts || !isTransient(err) {
			return nil, lastErr
		}

		log.Warnf(ctx, "[Weather] Attempt %d/%d failed (%v), retrying in %s", attempt, attempts, err, backoff)

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
		backoff *= 2
	}

	return nil, lastErr
}

// isTransient reports whether a retry could plausibly succeed.
func isTransient(err error) bool {
	var statusErr *statusError
	if errors.As(err, &statusErr) {
		switch statusErr.Code {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		}
		return false
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}

// classify maps a request failure onto the tool error taxonomy.
func classify(err error) *tools.Error {
	var toolErr *tools.Error
	if errors.As(err, &toolErr) {
		return toolErr
	}

	var statusErr *statusError
	if errors.As(err, &statusErr) {
		return tools.NewError(tools.ErrorKindAPI, "API Error: %d - %s", statusErr.Code, statusErr.Body)
	}

	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return tools.NewError(tools.ErrorKindNetwork, "Network error: %v", err)
	}

	return tools.NewError(tools.ErrorKindUnexpected, "Unexpected error: %v", err)
}

// buildReport checks the decoded response for the fields the report
// needs and normalizes them. A missing field is a parse error naming
// its dotted JSON path.
func buildReport(city string, raw *currentResponse) (*Report, error) {
	switch {
	case raw.Main == nil || raw.Main.Temp == nil:
		return nil, missingField("main.temp")
	case raw.Main.Humidity == nil:
		return nil, missingField("main.humidity")
	case raw.Main.Pressure == nil:
		return nil, missingField("main.pressure")
	case len(raw.Weather) == 0 || raw.Weather[0].Description == nil:
		return nil, missingField("weather[0].description")
	case raw.Wind == nil || raw.Wind.Speed == nil:
		return nil, missingField("wind.speed")
	}

	tempC := *raw.Main.Temp
	return &Report{
		City:         city,
		TemperatureC: tempC,
		TemperatureF: celsiusToFahrenheit(tempC),
		Conditions:   *raw.Weather[0].Description,
		Humidity:     *raw.Main.Humidity,
		WindSpeed:    *raw.Wind.Speed,
		Pressure:     *raw.Main.Pressure,
	}, nil
}

func missingField(path string) *tools.Error {
	return tools.NewError(tools.ErrorKindParse, "Could not parse weather data: missing field %q", path)
}

// celsiusToFahrenheit converts and rounds to 1 decimal place, halves
// away from zero.
func celsiusToFahrenheit(c float64) float64 {
	return math.Round((c*9/5+32)*10) / 10
}
