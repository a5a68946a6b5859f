// Package radar wraps the Radar geofencing platform as a geofence event source.
package radar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"courtcrowd/internal/errors"
)

// TrackRequest is the body of POST /v1/track.
type TrackRequest struct {
	DeviceID   string    `json:"deviceId"`
	UserID     string    `json:"userId"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Accuracy   float64   `json:"accuracy"`
	Foreground bool      `json:"foreground"`
	Stopped    bool      `json:"stopped"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// TrackResponse is the subset of the track response the service consumes.
type TrackResponse struct {
	Meta   Meta    `json:"meta"`
	Events []Event `json:"events"`
}

// Meta carries the Radar status code.
type Meta struct {
	Code    int    `json:"code"`
	Message string `json:"message,omitempty"`
}

// Event is a Radar event as delivered by the track API and webhooks.
type Event struct {
	ID              string     `json:"_id"`
	Type            string     `json:"type"`
	CreatedAt       time.Time  `json:"createdAt"`
	ActualCreatedAt time.Time  `json:"actualCreatedAt"`
	User            *EventUser `json:"user,omitempty"`
	Geofence        *Geofence  `json:"geofence,omitempty"`
	Trip            *Trip      `json:"trip,omitempty"`
}

// EventUser identifies the user an event belongs to.
type EventUser struct {
	UserID   string `json:"userId"`
	DeviceID string `json:"deviceId"`
}

// Geofence is a Radar geofence. ExternalID holds the court id.
type Geofence struct {
	ID          string `json:"_id"`
	Tag         string `json:"tag"`
	ExternalID  string `json:"externalId"`
	Description string `json:"description"`
}

// Trip is a Radar trip whose destination geofence is a court.
type Trip struct {
	ID                            string `json:"_id"`
	ExternalID                    string `json:"externalId"`
	DestinationGeofenceTag        string `json:"destinationGeofenceTag"`
	DestinationGeofenceExternalID string `json:"destinationGeofenceExternalId"`
}

// Client calls the Radar REST API with a secret key.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Radar API client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Track submits a location update and returns the events Radar generated for it.
func (c *Client) Track(ctx context.Context, apiKey string, req *TrackRequest) (*TrackResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal track request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/track", bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create track request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(err, "failed to call radar track")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return nil, errors.WithStack(fmt.Errorf("radar track returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet))))
	}

	var out TrackResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, errors.Wrap(err, "failed to decode track response")
	}

	return &out, nil
}
