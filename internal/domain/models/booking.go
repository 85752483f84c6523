package models

// Booking statuses. Waiting is reserved for display purposes; the
// booking workflow only ever produces Confirmed and Cancelled.
const (
	StatusConfirmed = "Confirmed"
	StatusCancelled = "Cancelled"
	StatusWaiting   = "Waiting"
)

// MaxPassengersPerBooking caps a single booking. The web form stops at
// six; the service enforces the same limit.
const MaxPassengersPerBooking = 6

type Booking struct {
	ID          int64   `json:"booking_id"`
	UserID      int64   `json:"user_id"`
	TrainID     int64   `json:"train_id"`
	PNRNumber   string  `json:"pnr_number"`
	JourneyDate string  `json:"journey_date"`
	Passengers  int     `json:"number_of_passengers"`
	TotalFare   float64 `json:"total_fare"`
	Status      string  `json:"status"`
	BookingDate string  `json:"booking_date"`
}

// BookingSummary is a booking joined with its train's descriptive
// fields for the list and detail views. Passenger rows are fetched
// separately.
type BookingSummary struct {
	Booking
	TrainName     string `json:"train_name"`
	TrainNumber   string `json:"train_number"`
	Source        string `json:"source"`
	Destination   string `json:"destination"`
	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`
	Duration      string `json:"duration"`
}

type Passenger struct {
	ID         int64  `json:"passenger_id"`
	BookingID  int64  `json:"booking_id"`
	Name       string `json:"name"`
	Age        int    `json:"age"`
	Gender     string `json:"gender"`
	SeatNumber string `json:"seat_number,omitempty"`
}

// PassengerInput is the caller-supplied passenger data on booking
// creation. SeatNumber is optional free text, never validated against
// capacity.
type PassengerInput struct {
	Name       string `json:"name"`
	Age        int    `json:"age"`
	Gender     string `json:"gender"`
	SeatNumber string `json:"seatNumber"`
}

// BookingConfirmation is returned from a successful create.
type BookingConfirmation struct {
	BookingID      int64   `json:"bookingId"`
	PNRNumber      string  `json:"pnrNumber"`
	TotalFare      float64 `json:"totalFare"`
	JourneyDate    string  `json:"journeyDate"`
	Status         string  `json:"status"`
	PassengerCount int     `json:"passengerCount"`
}

// PNRStatus is the public, unauthenticated view of a booking. The PNR
// itself is the capability; no owner fields are exposed.
type PNRStatus struct {
	PNRNumber     string `json:"pnr_number"`
	JourneyDate   string `json:"journey_date"`
	Status        string `json:"status"`
	Passengers    int    `json:"number_of_passengers"`
	TrainName     string `json:"train_name"`
	TrainNumber   string `json:"train_number"`
	Source        string `json:"source"`
	Destination   string `json:"destination"`
	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`
	Duration      string `json:"duration"`
}
