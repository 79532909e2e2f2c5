package gtfsrt

import (
	"fmt"
	"io"
	"net/http"
	"time"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"
)

// Client fetches CapMetro real-time feeds over HTTP.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a feed client with a fixed per-request deadline.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) fetchBytes(url string) ([]byte, error) {
	resp, err := c.httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}
	return io.ReadAll(resp.Body)
}

func (c *Client) fetchFeed(url string) (*gtfsrtpb.FeedMessage, error) {
	b, err := c.fetchBytes(url)
	if err != nil {
		return nil, err
	}
	var fm gtfsrtpb.FeedMessage
	if err := proto.Unmarshal(b, &fm); err != nil {
		return nil, fmt.Errorf("decode feed from %s: %w", url, err)
	}
	return &fm, nil
}

// FetchTripUpdates downloads the trip-updates feed and flattens it into
// per-stop predictions.
func (c *Client) FetchTripUpdates(url string) ([]StopTimePrediction, error) {
	fm, err := c.fetchFeed(url)
	if err != nil {
		return nil, fmt.Errorf("trip updates: %w", err)
	}
	return PredictionsFromFeed(fm), nil
}

// FetchAlerts downloads the service-alerts feed.
func (c *Client) FetchAlerts(url string) ([]Alert, error) {
	fm, err := c.fetchFeed(url)
	if err != nil {
		return nil, fmt.Errorf("service alerts: %w", err)
	}
	return AlertsFromFeed(fm), nil
}

// FetchVehicles downloads the JSON vehicle-positions feed.
func (c *Client) FetchVehicles(url string) ([]Vehicle, error) {
	b, err := c.fetchBytes(url)
	if err != nil {
		return nil, fmt.Errorf("vehicle positions: %w", err)
	}
	vehicles, err := VehiclesFromJSON(b)
	if err != nil {
		return nil, fmt.Errorf("vehicle positions: %w", err)
	}
	return vehicles, nil
}
