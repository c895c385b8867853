package transit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/randytsao24/muniboard/internal/cache"
)

const defaultSIRIBase = "https://api.511.org/transit/StopMonitoring"

// utf8BOM prefixes every 511.org JSON response and must be stripped
// before decoding.
var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// LiveFeed fetches real-time arrivals from the 511.org SIRI
// stop-monitoring API. One blocking request per poll, bounded by the
// client timeout; any failure or empty payload falls back to the demo
// source so the display never goes dark.
type LiveFeed struct {
	apiKey    string
	agency    string
	line      string
	stopCode  string
	direction string
	baseURL   string
	client    *http.Client
	cache     *cache.Cache[[]Arrival]
	fallback  Source
	now       func() time.Time
}

// NewLiveFeed creates a live SIRI source for one line/stop/direction.
func NewLiveFeed(apiKey, agency, line, stopCode, direction string, timeout time.Duration) *LiveFeed {
	return &LiveFeed{
		apiKey:    apiKey,
		agency:    agency,
		line:      line,
		stopCode:  stopCode,
		direction: direction,
		baseURL:   defaultSIRIBase,
		client:    &http.Client{Timeout: timeout},
		cache:     cache.New[[]Arrival](10 * time.Second),
		fallback:  NewDemo(direction),
		now:       time.Now,
	}
}

// Poll fetches and parses one snapshot of upcoming arrivals.
func (f *LiveFeed) Poll() []Arrival {
	if cached, ok := f.cache.Get(f.stopCode); ok {
		return cached
	}

	arrivals, err := f.fetch()
	if err != nil {
		slog.Warn("live feed failed, using demo data", "stop", f.stopCode, "error", err)
		return f.fallback.Poll()
	}
	if len(arrivals) == 0 {
		slog.Warn("live feed returned no arrivals, using demo data", "stop", f.stopCode)
		return f.fallback.Poll()
	}

	f.cache.Set(f.stopCode, arrivals)
	return arrivals
}

func (f *LiveFeed) fetch() ([]Arrival, error) {
	params := url.Values{}
	params.Set("api_key", f.apiKey)
	params.Set("agency", f.agency)
	params.Set("stopCode", f.stopCode)
	params.Set("format", "json")

	resp, err := f.client.Get(f.baseURL + "?" + params.Encode())
	if err != nil {
		return nil, fmt.Errorf("fetching stop monitoring: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("stop monitoring returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	return ParseStopMonitoring(body, f.line, f.direction, f.now())
}

// ParseStopMonitoring decodes a SIRI stop-monitoring document into a
// sorted arrival list for one line and direction. Entries whose arrival
// time has already passed are dropped.
func ParseStopMonitoring(body []byte, line, direction string, now time.Time) ([]Arrival, error) {
	body = bytes.TrimPrefix(body, utf8BOM)

	var doc stopMonitoringResponse
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("parsing stop monitoring response: %w", err)
	}

	delivery := doc.ServiceDelivery.StopMonitoringDelivery
	if len(delivery) == 0 {
		return nil, nil
	}

	var arrivals []Arrival
	for _, visit := range delivery[0].MonitoredStopVisit {
		journey := visit.MonitoredVehicleJourney

		if line != "" && journey.LineRef != line {
			continue
		}
		if direction != "" && journey.DirectionRef != direction {
			continue
		}

		arrivalTime := journey.MonitoredCall.ExpectedArrivalTime
		if arrivalTime.IsZero() {
			arrivalTime = journey.MonitoredCall.AimedArrivalTime
		}
		if arrivalTime.IsZero() {
			continue
		}

		remaining := arrivalTime.Sub(now)
		if remaining < 0 {
			continue
		}

		arrivals = append(arrivals, Arrival{
			Destination: journey.DestinationName,
			Minutes:     int(remaining.Minutes()),
			VehicleRef:  journey.VehicleRef,
		})
	}

	sortByMinutes(arrivals)
	return arrivals, nil
}

// SIRI response structures, per the 511.org stop-monitoring schema.
type stopMonitoringResponse struct {
	ServiceDelivery struct {
		StopMonitoringDelivery []struct {
			MonitoredStopVisit []struct {
				MonitoredVehicleJourney monitoredVehicleJourney `json:"MonitoredVehicleJourney"`
			} `json:"MonitoredStopVisit"`
		} `json:"StopMonitoringDelivery"`
	} `json:"ServiceDelivery"`
}

type monitoredVehicleJourney struct {
	LineRef         string `json:"LineRef"`
	DirectionRef    string `json:"DirectionRef"`
	DestinationName string `json:"DestinationName"`
	VehicleRef      string `json:"VehicleRef"`
	MonitoredCall   struct {
		ExpectedArrivalTime time.Time `json:"ExpectedArrivalTime"`
		AimedArrivalTime    time.Time `json:"AimedArrivalTime"`
	} `json:"MonitoredCall"`
}
