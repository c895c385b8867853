package transit

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"
)

const defaultGTFSBase = "https://api.511.org/transit/tripupdates"

// GTFS direction_id values for MUNI: 0 is outbound, 1 is inbound.
const (
	gtfsDirectionOutbound = 0
	gtfsDirectionInbound  = 1
)

// GTFSFeed fetches arrivals from the 511.org GTFS-Realtime TripUpdates
// feed. Same contract as LiveFeed: one bounded blocking request per
// poll, demo data on any failure.
type GTFSFeed struct {
	apiKey    string
	agency    string
	line      string
	stopCode  string
	direction string
	baseURL   string
	client    *http.Client
	fallback  Source
	now       func() time.Time
}

// NewGTFSFeed creates a GTFS-RT source for one line/stop/direction.
func NewGTFSFeed(apiKey, agency, line, stopCode, direction string, timeout time.Duration) *GTFSFeed {
	return &GTFSFeed{
		apiKey:    apiKey,
		agency:    agency,
		line:      line,
		stopCode:  stopCode,
		direction: direction,
		baseURL:   defaultGTFSBase,
		client:    &http.Client{Timeout: timeout},
		fallback:  NewDemo(direction),
		now:       time.Now,
	}
}

// Poll fetches and parses one snapshot of upcoming arrivals.
func (f *GTFSFeed) Poll() []Arrival {
	arrivals, err := f.fetch()
	if err != nil {
		slog.Warn("gtfs-rt feed failed, using demo data", "stop", f.stopCode, "error", err)
		return f.fallback.Poll()
	}
	if len(arrivals) == 0 {
		slog.Warn("gtfs-rt feed returned no arrivals, using demo data", "stop", f.stopCode)
		return f.fallback.Poll()
	}
	return arrivals
}

func (f *GTFSFeed) fetch() ([]Arrival, error) {
	params := url.Values{}
	params.Set("api_key", f.apiKey)
	params.Set("agency", f.agency)

	resp, err := f.client.Get(f.baseURL + "?" + params.Encode())
	if err != nil {
		return nil, fmt.Errorf("fetching trip updates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("trip updates returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	feed := &gtfs.FeedMessage{}
	if err := proto.Unmarshal(body, feed); err != nil {
		return nil, fmt.Errorf("parsing protobuf: %w", err)
	}

	return f.parseArrivals(feed), nil
}

func (f *GTFSFeed) parseArrivals(feed *gtfs.FeedMessage) []Arrival {
	wantDirection := uint32(gtfsDirectionInbound)
	if f.direction == DirectionOutbound {
		wantDirection = gtfsDirectionOutbound
	}

	now := f.now()
	var arrivals []Arrival

	for _, entity := range feed.GetEntity() {
		tripUpdate := entity.GetTripUpdate()
		if tripUpdate == nil {
			continue
		}

		trip := tripUpdate.GetTrip()
		if trip.GetRouteId() != f.line {
			continue
		}
		if trip.DirectionId != nil && trip.GetDirectionId() != wantDirection {
			continue
		}

		for _, stopTimeUpdate := range tripUpdate.GetStopTimeUpdate() {
			if stopTimeUpdate.GetStopId() != f.stopCode {
				continue
			}

			arrivalTime := stopTimeUpdate.GetArrival().GetTime()
			if arrivalTime == 0 {
				arrivalTime = stopTimeUpdate.GetDeparture().GetTime()
			}
			if arrivalTime == 0 {
				continue
			}

			remaining := time.Unix(arrivalTime, 0).Sub(now)
			if remaining < 0 {
				continue
			}

			// Trip updates carry no headsign; the board only renders
			// minutes, so the destination stays blank here.
			arrivals = append(arrivals, Arrival{
				Minutes:    int(remaining.Minutes()),
				VehicleRef: tripUpdate.GetVehicle().GetId(),
			})
		}
	}

	sortByMinutes(arrivals)
	return arrivals
}
