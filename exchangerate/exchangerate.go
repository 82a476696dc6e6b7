// Package exchangerate is a client for the v6.exchangerate-api.com currency
// rate service. It caches responses on disk for an hour, retries rate-limited
// requests with exponential backoff, and translates the few non-ISO currency
// codes the application uses before talking to the service.
package exchangerate

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

const apiKeyEnv = "EXCHANGE_RATE_API_KEY"

var apiKeyFlag = flag.String("exchange-rate-api-key", "", "API key for the exchange rate service.\n If missing it will be read from the environment variable \""+apiKeyEnv+"\". You can get one at https://www.exchangerate-api.com/")

// APIKey returns the configured API key, from the flag or from the
// environment.
func APIKey() string {
	// If the flag is not set, we try to read it from the environment variable.
	if *apiKeyFlag == "" {
		*apiKeyFlag = os.Getenv(apiKeyEnv)
	}
	return *apiKeyFlag
}

// DefaultBaseURL is the production endpoint of the rate service.
const DefaultBaseURL = "https://v6.exchangerate-api.com/v6"

// currencyAliases maps application currency codes to the standard codes the
// service understands.
var currencyAliases = map[string]string{
	"NTD": "TWD", // New Taiwan Dollar
}

// standardCode translates an application code to the service's code.
func standardCode(currency string) string {
	if std, ok := currencyAliases[currency]; ok {
		return std
	}
	return currency
}

// customCode translates a service code back to the application's code.
func customCode(currency string) string {
	for custom, std := range currencyAliases {
		if std == currency {
			return custom
		}
	}
	return currency
}

// The error taxonomy of the rate service. A caller converting currencies
// treats any of them as a conversion failure.
var (
	ErrMissingAPIKey   = errors.New("exchange rate API key is not configured")
	ErrInvalidAPIKey   = errors.New("exchange rate API key is invalid")
	ErrRateLimited     = errors.New("exchange rate API request quota reached")
	ErrInvalidResponse = errors.New("invalid response from the exchange rate API")
	ErrUnknownCurrency = errors.New("currency is not supported by the exchange rate API")
)

// Client queries the rate service. The zero number of retries means the
// NewClient default of 3.
type Client struct {
	APIKey  string
	BaseURL string

	client  *http.Client
	retries int
}

// NewClient returns a client for the production service using an
// hourly-expiring disk cache, so repeated conversions within the hour never
// reach the network.
func NewClient(apiKey string) *Client {
	return &Client{
		APIKey:  apiKey,
		BaseURL: DefaultBaseURL,
		client:  newHourlyCachingClient(),
		retries: 3,
	}
}

// Rates fetches the rate table for the base currency: a mapping from
// currency code to the multiplicative rate relative to base. It implements
// the store's RateProvider interface.
func (c *Client) Rates(ctx context.Context, base string) (map[string]decimal.Decimal, error) {
	if c.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	addr := fmt.Sprintf("%s/%s/latest/%s", c.BaseURL, c.APIKey, standardCode(base))
	body, err := c.get(ctx, addr)
	if err != nil {
		return nil, err
	}

	var jobj any
	if err := json.Unmarshal(body, &jobj); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	jval, err := jsonpath.Get("$.conversion_rates", jobj)
	if err != nil {
		return nil, fmt.Errorf("%w: no conversion rates found", ErrInvalidResponse)
	}
	jrates, ok := jval.(map[string]any)
	if !ok || len(jrates) == 0 {
		return nil, fmt.Errorf("%w: no conversion rates found", ErrInvalidResponse)
	}

	rates := make(map[string]decimal.Decimal, len(jrates))
	for code, jrate := range jrates {
		jr, ok := jrate.(float64)
		if !ok {
			return nil, fmt.Errorf("%w: rate for %s is not a number", ErrInvalidResponse, code)
		}
		rate := decimal.NewFromFloat(jr)
		rates[code] = rate
		// aliased codes are reachable under both names, so NTD and TWD both
		// work as conversion targets.
		if custom := customCode(code); custom != code {
			rates[custom] = rate
		}
	}
	return rates, nil
}

// get performs the request, retrying with exponential backoff when the
// service rate-limits, and maps HTTP failures to the error taxonomy.
func (c *Client) get(ctx context.Context, addr string) ([]byte, error) {
	retries := c.retries
	if retries == 0 {
		retries = 3
	}
	for attempt := 0; ; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
		if err != nil {
			return nil, err
		}
		resp, err := c.client.Do(req)
		if err != nil {
			return nil, err
		}
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, err
		}

		switch {
		case resp.StatusCode == http.StatusTooManyRequests:
			if attempt >= retries-1 {
				return nil, ErrRateLimited
			}
			select {
			case <-time.After(time.Second << attempt):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
			return nil, ErrInvalidAPIKey
		case resp.StatusCode != http.StatusOK:
			return nil, apiError(body, resp.Status)
		default:
			return body, nil
		}
	}
}

// apiError maps the service's error-type payload to the taxonomy.
func apiError(body []byte, status string) error {
	var jerr struct {
		ErrorType string `json:"error-type"`
	}
	if json.Unmarshal(body, &jerr) != nil || jerr.ErrorType == "" {
		return fmt.Errorf("%w: %s", ErrInvalidResponse, status)
	}
	switch jerr.ErrorType {
	case "unsupported-code":
		return ErrUnknownCurrency
	case "invalid-key", "inactive-account":
		return ErrInvalidAPIKey
	case "quota-reached":
		return ErrRateLimited
	default:
		return fmt.Errorf("%w: %s", ErrInvalidResponse, jerr.ErrorType)
	}
}
