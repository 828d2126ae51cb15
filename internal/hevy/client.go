// Package hevy is a client for the Hevy public API, which serves logged
// strength workouts and the exercise catalog behind them.
package hevy

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"
)

const BaseURL = "https://api.hevyapp.com/v1"

// maxPageSize is the largest page the workouts endpoint allows
const maxPageSize = 10

// Client is a Hevy API client. Exercise templates are cached for the
// client's lifetime; the catalog doesn't change mid-sync.
type Client struct {
	httpClient *http.Client
	apiKey     string

	mu        sync.Mutex
	templates map[string]*ExerciseTemplate
}

// NewClient creates a new Hevy API client
func NewClient(apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		apiKey:     apiKey,
		templates:  make(map[string]*ExerciseTemplate),
	}
}

// GetWorkouts fetches one page of workouts, newest first
func (c *Client) GetWorkouts(ctx context.Context, page int) (*WorkoutsPage, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("pageSize", strconv.Itoa(maxPageSize))

	resp, err := c.get(ctx, "/workouts", params)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var result WorkoutsPage
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding workouts page %d: %w", page, err)
	}
	return &result, nil
}

// GetAllWorkouts fetches every workout, paginating until exhausted
func (c *Client) GetAllWorkouts(ctx context.Context, onProgress func(fetched int)) ([]Workout, error) {
	var all []Workout
	page := 1

	for {
		result, err := c.GetWorkouts(ctx, page)
		if err != nil {
			return all, fmt.Errorf("fetching page %d: %w", page, err)
		}

		all = append(all, result.Workouts...)

		if onProgress != nil {
			onProgress(len(all))
		}

		if page >= result.PageCount || len(result.Workouts) == 0 {
			break
		}
		page++
	}

	return all, nil
}

// GetExerciseTemplate fetches an exercise's catalog entry, serving repeat
// lookups from the cache
func (c *Client) GetExerciseTemplate(ctx context.Context, templateID string) (*ExerciseTemplate, error) {
	c.mu.Lock()
	if t, ok := c.templates[templateID]; ok {
		c.mu.Unlock()
		return t, nil
	}
	c.mu.Unlock()

	resp, err := c.get(ctx, "/exercise_templates/"+templateID, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var template ExerciseTemplate
	if err := json.NewDecoder(resp.Body).Decode(&template); err != nil {
		return nil, fmt.Errorf("decoding exercise template %s: %w", templateID, err)
	}

	c.mu.Lock()
	c.templates[templateID] = &template
	c.mu.Unlock()

	return &template, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values) (*http.Response, error) {
	reqURL := BaseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("api-key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, fmt.Errorf("API error %d: %s", resp.StatusCode, string(body))
	}

	return resp, nil
}
