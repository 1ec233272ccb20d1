package stats

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
)

const DefaultLeetCodeAPI = "https://leetcode-stats-api.herokuapp.com"

// LeetCodeStats backs the coding-proficiency panel.
type LeetCodeStats struct {
	Status         string  `json:"status"`
	TotalSolved    int     `json:"totalSolved"`
	EasySolved     int     `json:"easySolved"`
	MediumSolved   int     `json:"mediumSolved"`
	HardSolved     int     `json:"hardSolved"`
	TotalQuestions int     `json:"totalQuestions"`
	AcceptanceRate float64 `json:"acceptanceRate"`
	Ranking        int     `json:"ranking"`
}

type LeetCodeFetcher interface {
	FetchStats(ctx context.Context, user string) (*LeetCodeStats, error)
}

type LeetCodeClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewLeetCodeClient(baseURL string, httpClient *http.Client) *LeetCodeClient {
	if baseURL == "" {
		baseURL = DefaultLeetCodeAPI
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &LeetCodeClient{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}
}

func (c *LeetCodeClient) FetchStats(ctx context.Context, user string) (*LeetCodeStats, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+url.PathEscape(user), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch LeetCode stats: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var stats LeetCodeStats
	if err := sonic.Unmarshal(body, &stats); err != nil {
		return nil, fmt.Errorf("failed to parse LeetCode stats: %w", err)
	}
	if stats.Status != "" && stats.Status != "success" {
		return nil, fmt.Errorf("LeetCode stats unavailable: status %q", stats.Status)
	}
	return &stats, nil
}
