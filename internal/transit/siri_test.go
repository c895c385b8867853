package transit

import (
	"fmt"
	"testing"
	"time"
)

var parseNow = time.Date(2026, 8, 26, 8, 0, 0, 0, time.UTC)

// visit builds one MonitoredStopVisit JSON fragment. Kept on a single
// line so documents double as NDJSON fixture lines.
func visit(line, direction, dest, vehicle string, arrival time.Time) string {
	return fmt.Sprintf(`{"MonitoredVehicleJourney":{"LineRef":%q,"DirectionRef":%q,"DestinationName":%q,"VehicleRef":%q,"MonitoredCall":{"ExpectedArrivalTime":%q}}}`,
		line, direction, dest, vehicle, arrival.Format(time.RFC3339))
}

func document(visits ...string) []byte {
	body := `{"ServiceDelivery":{"StopMonitoringDelivery":[{"MonitoredStopVisit":[`
	for i, v := range visits {
		if i > 0 {
			body += ","
		}
		body += v
	}
	return []byte(body + `]}]}}`)
}

// ---------------------------------------------------------------------------
// ParseStopMonitoring
// ---------------------------------------------------------------------------

func TestParseStopMonitoring(t *testing.T) {
	body := document(
		visit("L", "IB", "Embarcadero", "L2", parseNow.Add(8*time.Minute)),
		visit("L", "IB", "Embarcadero", "L1", parseNow.Add(3*time.Minute)),
		visit("L", "IB", "Embarcadero", "L3", parseNow.Add(15*time.Minute)),
	)

	arrivals, err := ParseStopMonitoring(body, "L", "IB", parseNow)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(arrivals) != 3 {
		t.Fatalf("got %d arrivals, want 3", len(arrivals))
	}

	wantMinutes := []int{3, 8, 15}
	for i, want := range wantMinutes {
		if arrivals[i].Minutes != want {
			t.Errorf("arrival %d minutes = %d, want %d (must be sorted ascending)", i, arrivals[i].Minutes, want)
		}
	}
	if arrivals[0].VehicleRef != "L1" {
		t.Errorf("soonest vehicle = %q, want L1", arrivals[0].VehicleRef)
	}
}

func TestParseStopMonitoringStripsBOM(t *testing.T) {
	body := append([]byte{0xef, 0xbb, 0xbf}, document(
		visit("L", "IB", "Embarcadero", "L1", parseNow.Add(3*time.Minute)),
	)...)

	arrivals, err := ParseStopMonitoring(body, "L", "IB", parseNow)
	if err != nil {
		t.Fatalf("parse with BOM: %v", err)
	}
	if len(arrivals) != 1 {
		t.Errorf("got %d arrivals, want 1", len(arrivals))
	}
}

func TestParseStopMonitoringFilters(t *testing.T) {
	body := document(
		visit("L", "IB", "Embarcadero", "L1", parseNow.Add(3*time.Minute)),
		visit("N", "IB", "Caltrain", "N1", parseNow.Add(2*time.Minute)),
		visit("L", "OB", "SF Zoo", "L2", parseNow.Add(4*time.Minute)),
	)

	arrivals, err := ParseStopMonitoring(body, "L", "IB", parseNow)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(arrivals) != 1 {
		t.Fatalf("got %d arrivals, want 1 after line/direction filtering", len(arrivals))
	}
	if arrivals[0].VehicleRef != "L1" {
		t.Errorf("kept vehicle %q, want L1", arrivals[0].VehicleRef)
	}
}

func TestParseStopMonitoringDropsPastArrivals(t *testing.T) {
	body := document(
		visit("L", "IB", "Embarcadero", "L1", parseNow.Add(-2*time.Minute)),
		visit("L", "IB", "Embarcadero", "L2", parseNow.Add(6*time.Minute)),
	)

	arrivals, err := ParseStopMonitoring(body, "L", "IB", parseNow)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(arrivals) != 1 || arrivals[0].VehicleRef != "L2" {
		t.Errorf("arrivals = %+v, want only the future one", arrivals)
	}
}

func TestParseStopMonitoringAimedFallback(t *testing.T) {
	body := []byte(fmt.Sprintf(`{"ServiceDelivery":{"StopMonitoringDelivery":[{"MonitoredStopVisit":[{
		"MonitoredVehicleJourney": {
			"LineRef": "L",
			"DirectionRef": "IB",
			"MonitoredCall": {"AimedArrivalTime": %q}
		}
	}]}]}}`, parseNow.Add(5*time.Minute).Format(time.RFC3339)))

	arrivals, err := ParseStopMonitoring(body, "L", "IB", parseNow)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(arrivals) != 1 || arrivals[0].Minutes != 5 {
		t.Errorf("arrivals = %+v, want one at 5 minutes from aimed time", arrivals)
	}
}

func TestParseStopMonitoringMalformed(t *testing.T) {
	if _, err := ParseStopMonitoring([]byte("not json"), "L", "IB", parseNow); err == nil {
		t.Error("malformed document should return an error")
	}
}

func TestParseStopMonitoringEmptyDelivery(t *testing.T) {
	arrivals, err := ParseStopMonitoring([]byte(`{"ServiceDelivery":{"StopMonitoringDelivery":[]}}`), "L", "IB", parseNow)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(arrivals) != 0 {
		t.Errorf("got %d arrivals from empty delivery, want 0", len(arrivals))
	}
}

// ---------------------------------------------------------------------------
// Equal
// ---------------------------------------------------------------------------

func TestEqual(t *testing.T) {
	a := []Arrival{{Destination: "Embarcadero", Minutes: 3, VehicleRef: "L1"}}
	b := []Arrival{{Destination: "Embarcadero", Minutes: 3, VehicleRef: "L1"}}
	c := []Arrival{{Destination: "Embarcadero", Minutes: 4, VehicleRef: "L1"}}

	if !Equal(a, b) {
		t.Error("identical lists should be equal")
	}
	if Equal(a, c) {
		t.Error("differing minutes should not be equal")
	}
	if Equal(a, nil) {
		t.Error("different lengths should not be equal")
	}
	if !Equal(nil, []Arrival{}) {
		t.Error("nil and empty are both no arrivals")
	}
}
