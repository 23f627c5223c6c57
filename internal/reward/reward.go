// ABOUTME: Random reward image lookup for the habit check-in screen.
// ABOUTME: Derives a category label from the image URL path.
package reward

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://dog.ceo/api/breeds/image/random"
	requestTimeout = 10 * time.Second
)

// Image is a random reward image and its derived category label.
type Image struct {
	URL      string
	Category string
}

// Client fetches random reward images. No key required.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a reward image client.
func NewClient() *Client {
	return &Client{
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: requestTimeout},
	}
}

type apiResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// Random returns a random image, or an error on any failure. The category
// label is parsed from the URL path segment of the form category-subcategory;
// a segment without a subcategory is used as-is.
func (c *Client) Random(ctx context.Context) (*Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build image request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch image: status %d", resp.StatusCode)
	}

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode image response: %w", err)
	}
	if body.Message == "" {
		return nil, fmt.Errorf("empty image url")
	}

	return &Image{
		URL:      body.Message,
		Category: CategoryFromURL(body.Message),
	}, nil
}

// CategoryFromURL extracts the category label from an image URL, e.g.
// ".../breeds/hound-afghan/n02088094_1003.jpg" yields "hound (afghan)".
func CategoryFromURL(rawURL string) string {
	segments := strings.Split(strings.Trim(rawURL, "/"), "/")
	for i := len(segments) - 1; i >= 0; i-- {
		seg := segments[i]
		if strings.Contains(seg, ".") || seg == "" {
			continue // filename or empty
		}
		if category, sub, found := strings.Cut(seg, "-"); found {
			return fmt.Sprintf("%s (%s)", category, sub)
		}
		return seg
	}
	return ""
}
