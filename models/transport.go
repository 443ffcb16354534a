package models

// TransportOption describes one way of getting from the traveler's home
// base to the destination.
type TransportOption struct {
	Label      string `json:"label"`
	Mode       string `json:"mode"` // car, flight, ground, train_bus, bus
	Duration   string `json:"duration"`
	Distance   string `json:"distance,omitempty"`
	Cost       string `json:"cost"`
	Highlights string `json:"highlights"`
}
