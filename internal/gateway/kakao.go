package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"address-resolver/internal/models"

	"github.com/rs/zerolog/log"
)

const (
	DefaultBaseURL    = "https://dapi.kakao.com"
	addressSearchPath = "/v2/local/search/address.json"
	defaultPageSize   = 10
)

// KakaoClient implements Gateway on top of the Kakao Local address search API.
type KakaoClient struct {
	baseURL    string
	apiKey     string
	pageSize   int
	httpClient *http.Client
}

// NewKakaoClient creates a client authenticating with the given REST API key.
func NewKakaoClient(baseURL, apiKey string, timeout time.Duration) *KakaoClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &KakaoClient{
		baseURL:  baseURL,
		apiKey:   apiKey,
		pageSize: defaultPageSize,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type kakaoResponse struct {
	Meta struct {
		TotalCount int  `json:"total_count"`
		IsEnd      bool `json:"is_end"`
	} `json:"meta"`
	Documents []models.GeocodeCandidate `json:"documents"`
}

// Search queries the address search endpoint.
func (c *KakaoClient) Search(ctx context.Context, query string) (models.SearchResult, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("size", strconv.Itoa(c.pageSize))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+addressSearchPath+"?"+params.Encode(), nil)
	if err != nil {
		return models.SearchResult{}, fmt.Errorf("gateway: failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "KakaoAK "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.SearchResult{}, fmt.Errorf("gateway: failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		log.Warn().
			Int("status", resp.StatusCode).
			Str("query", query).
			Str("body", string(body)).
			Msg("address search rejected")
		return models.SearchResult{Status: models.StatusError}, nil
	}

	var payload kakaoResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return models.SearchResult{}, fmt.Errorf("gateway: failed to decode response: %w", err)
	}

	if len(payload.Documents) == 0 {
		return models.SearchResult{Status: models.StatusZeroResult}, nil
	}
	return models.SearchResult{Status: models.StatusOK, Candidates: payload.Documents}, nil
}
