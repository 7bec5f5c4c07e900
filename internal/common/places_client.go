package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"
)

// PlaceReview is a single Google review as served to the frontend.
type PlaceReview struct {
	AuthorName      string `json:"author_name"`
	ProfilePhotoURL string `json:"profile_photo_url"`
	Rating          int    `json:"rating"`
	Text            string `json:"text"`
	Time            int64  `json:"time"`
}

// PlaceDetails carries the review summary for the dealership's place entry.
type PlaceDetails struct {
	Rating           float64       `json:"rating"`
	UserRatingsTotal int           `json:"user_ratings_total"`
	Reviews          []PlaceReview `json:"reviews"`
}

type placeDetailsResponse struct {
	Result PlaceDetails `json:"result"`
	Status string       `json:"status"`
}

// PlacesClient fetches the dealership's Google reviews. Read-only; this
// system never writes reviews.
type PlacesClient struct {
	BaseURL string
	APIKey  string
	PlaceID string
	Client  *http.Client
}

// NewPlacesClient creates a new instance, reading config from environment variables
func NewPlacesClient() *PlacesClient {
	baseURL := os.Getenv("GOOGLE_PLACES_BASE_URL")
	if baseURL == "" {
		baseURL = "https://maps.googleapis.com/maps/api/place"
	}
	return &PlacesClient{
		BaseURL: baseURL,
		APIKey:  os.Getenv("GOOGLE_PLACES_API_KEY"),
		PlaceID: os.Getenv("GOOGLE_PLACE_ID"),
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// FetchDetails pulls rating and reviews for the configured place.
func (c *PlacesClient) FetchDetails() (*PlaceDetails, error) {
	if c.APIKey == "" || c.PlaceID == "" {
		return nil, errors.New("google places not configured")
	}

	params := url.Values{}
	params.Set("place_id", c.PlaceID)
	params.Set("fields", "rating,user_ratings_total,reviews")
	params.Set("key", c.APIKey)

	resp, err := c.Client.Get(c.BaseURL + "/details/json?" + params.Encode())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var wrap placeDetailsResponse
	if err := json.NewDecoder(resp.Body).Decode(&wrap); err != nil {
		return nil, err
	}
	if wrap.Status != "OK" {
		return nil, fmt.Errorf("places api returned status %s", wrap.Status)
	}

	return &wrap.Result, nil
}
