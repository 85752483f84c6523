package models

// Train is a date-agnostic service between two stations. Seat counts
// are aggregate only; physical seat assignment is not tracked.
type Train struct {
	ID             int64   `json:"train_id"`
	Name           string  `json:"train_name"`
	Number         string  `json:"train_number"`
	Source         string  `json:"source"`
	Destination    string  `json:"destination"`
	DepartureTime  string  `json:"departure_time"`
	ArrivalTime    string  `json:"arrival_time"`
	Duration       string  `json:"duration"`
	ClassType      string  `json:"class_type"`
	Fare           float64 `json:"fare"`
	AvailableSeats int     `json:"available_seats"`
	TotalSeats     int     `json:"total_seats"`
}

// RouteStop is one entry in a train's ordered stop sequence, joined
// with the station's descriptive fields.
type RouteStop struct {
	TrainID     int64  `json:"train_id"`
	StationID   int64  `json:"station_id"`
	StopNumber  int    `json:"stop_number"`
	StationName string `json:"station_name"`
	StationCode string `json:"station_code"`
	City        string `json:"city"`
}

type Station struct {
	ID   int64  `json:"station_id"`
	Name string `json:"station_name"`
	Code string `json:"station_code"`
	City string `json:"city"`
}
