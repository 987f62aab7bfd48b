package outbound

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shandysiswandi/goflightfinder/internal/flightfinder/entity"
)

// LiveState is one airborne tracked flight near an airport.
type LiveState struct {
	Callsign  string
	Altitude  float64
	Velocity  float64
	Latitude  float64
	Longitude float64
}

const (
	maxLiveStates = 10
	// bboxRadiusDeg is the half-side of the bounding box around the
	// airport, in degrees.
	bboxRadiusDeg = 1.0
	// minAltitudeM excludes aircraft on approach or on the ground.
	minAltitudeM = 1000
)

type LiveClient struct {
	baseURL string
	client  *http.Client
}

// NewLiveClient builds a client for the live state-vector feed.
func NewLiveClient(baseURL string, timeout time.Duration) *LiveClient {
	return &LiveClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// States returns up to ten airborne flights inside a bounding box around
// the airport. The feed encodes each state as a positional array of
// mixed types; fields that fail a type assertion are treated as absent.
func (c *LiveClient) States(ctx context.Context, airport entity.Airport) ([]LiveState, error) {
	url := fmt.Sprintf("%s/states/all?lamin=%f&lamax=%f&lomin=%f&lomax=%f",
		c.baseURL,
		airport.Lat-bboxRadiusDeg, airport.Lat+bboxRadiusDeg,
		airport.Lon-bboxRadiusDeg, airport.Lon+bboxRadiusDeg,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("live request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("live call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("live status %d", resp.StatusCode)
	}

	var body struct {
		States [][]any `json:"states"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("live decode: %w", err)
	}

	states := make([]LiveState, 0, maxLiveStates)
	for _, raw := range body.States {
		state, ok := parseState(raw)
		if !ok {
			continue
		}
		states = append(states, state)
		if len(states) == maxLiveStates {
			break
		}
	}
	return states, nil
}

// State-vector positions: 1 callsign, 5 longitude, 6 latitude,
// 8 on-ground, 9 velocity, 13 geometric altitude.
func parseState(raw []any) (LiveState, bool) {
	if len(raw) < 14 {
		return LiveState{}, false
	}

	onGround, _ := raw[8].(bool)
	altitude, altOK := asFloat(raw[13])
	if onGround || !altOK || altitude <= minAltitudeM {
		return LiveState{}, false
	}

	callsign, _ := raw[1].(string)
	velocity, _ := asFloat(raw[9])
	latitude, _ := asFloat(raw[6])
	longitude, _ := asFloat(raw[5])

	return LiveState{
		Callsign:  strings.TrimSpace(callsign),
		Altitude:  altitude,
		Velocity:  velocity,
		Latitude:  latitude,
		Longitude: longitude,
	}, true
}

func asFloat(value any) (float64, bool) {
	number, ok := value.(float64)
	return number, ok
}
