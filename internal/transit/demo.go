package transit

// Demo synthesizes a small, deterministic arrival list so the board has
// something plausible to show when no API key is configured or the live
// feed is down.
type Demo struct {
	direction string
}

// NewDemo creates a demo source for the given direction.
func NewDemo(direction string) *Demo {
	return &Demo{direction: direction}
}

// Poll returns the canned arrivals. Inbound trains head downtown to
// Embarcadero, outbound trains to the zoo terminal.
func (d *Demo) Poll() []Arrival {
	destination := "Embarcadero"
	if d.direction == DirectionOutbound {
		destination = "SF Zoo"
	}

	return []Arrival{
		{Destination: destination, Minutes: 3, VehicleRef: "L1234"},
		{Destination: destination, Minutes: 8, VehicleRef: "L5678"},
		{Destination: destination, Minutes: 15, VehicleRef: "L9012"},
	}
}
