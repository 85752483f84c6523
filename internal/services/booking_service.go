package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	intconfig "railway/internal/config"
	intdb "railway/internal/db"
	"railway/internal/domain"
	"railway/internal/domain/models"
	"railway/internal/repositories"
	"railway/internal/utils"
)

// pnrAttempts bounds regeneration when a random PNR collides with the
// unique index. A second collision in a 9-billion keyspace means
// something else is wrong.
const pnrAttempts = 3

// BookingService owns the booking lifecycle: Confirmed on create,
// one-way flip to Cancelled. Every multi-row mutation runs as a single
// transaction.
type BookingService struct {
	Bookings  repositories.BookingRepository
	Trains    repositories.TrainRepository
	DB        *sql.DB
	RequestID string
}

type CreateBookingInput struct {
	TrainID     int64                   `json:"trainId"`
	JourneyDate string                  `json:"journeyDate"`
	Passengers  []models.PassengerInput `json:"passengers"`
}

func (s BookingService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s BookingService) bookings() repositories.BookingRepository {
	if s.Bookings.DB != nil {
		return s.Bookings
	}
	return repositories.BookingRepository{DB: s.db()}
}

func (s BookingService) trains() repositories.TrainRepository {
	if s.Trains.DB != nil {
		return s.Trains
	}
	return repositories.TrainRepository{DB: s.db()}
}

// Create books seats for userID on a train. The booking row, its
// passenger rows and the seat decrement commit as one unit; the
// decrement is conditional on enough seats remaining, so concurrent
// requests for the last seats cannot both succeed.
func (s BookingService) Create(userID int64, in CreateBookingInput) (models.BookingConfirmation, error) {
	var out models.BookingConfirmation

	if err := validateCreateInput(in); err != nil {
		return out, err
	}

	train, err := s.trains().GetByID(in.TrainID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return out, domain.NotFoundError{Resource: "train", Err: err}
		}
		return out, domain.UnavailableError{Err: err}
	}

	count := len(in.Passengers)
	totalFare := train.Fare * float64(count)

	// Early check for a friendly message; the authoritative check is
	// the conditional decrement inside the transaction.
	if train.AvailableSeats < count {
		return out, domain.InsufficientSeatsError{TrainID: train.ID, Available: train.AvailableSeats}
	}

	var bookingID int64
	pnr := utils.GeneratePNR()

	for attempt := 1; ; attempt++ {
		err = intdb.WithTx(s.db(), func(tx *sql.Tx) error {
			id, err := s.bookings().InsertBooking(tx, models.Booking{
				UserID:      userID,
				TrainID:     in.TrainID,
				PNRNumber:   pnr,
				JourneyDate: in.JourneyDate,
				Passengers:  count,
				TotalFare:   totalFare,
				Status:      models.StatusConfirmed,
			})
			if err != nil {
				return err
			}
			bookingID = id

			if err := s.bookings().InsertPassengers(tx, id, in.Passengers); err != nil {
				return err
			}

			reserved, err := s.trains().ReserveSeats(tx, in.TrainID, count)
			if err != nil {
				return err
			}
			if !reserved {
				avail, rerr := s.trains().AvailableSeats(tx, in.TrainID)
				if rerr != nil {
					avail = 0
				}
				return domain.InsufficientSeatsError{TrainID: in.TrainID, Available: avail}
			}
			return nil
		})

		if err == nil {
			break
		}
		if intdb.IsDuplicateEntry(err) && attempt < pnrAttempts {
			pnr = utils.GeneratePNR()
			continue
		}
		if domain.IsInsufficientSeats(err) {
			return out, err
		}
		return out, domain.UnavailableError{Err: err}
	}

	utils.LogEvent(s.RequestID, "booking", "create",
		fmt.Sprintf("booking_id=%d train_id=%d passengers=%d", bookingID, in.TrainID, count))

	return models.BookingConfirmation{
		BookingID:      bookingID,
		PNRNumber:      pnr,
		TotalFare:      totalFare,
		JourneyDate:    in.JourneyDate,
		Status:         models.StatusConfirmed,
		PassengerCount: count,
	}, nil
}

// Cancel flips a Confirmed booking to Cancelled and returns its seats
// to the train, both in one transaction. Only the owner can cancel,
// only before the journey date, and only once.
func (s BookingService) Cancel(userID, bookingID int64) error {
	booking, err := s.bookings().GetByIDForUser(bookingID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NotFoundError{Resource: "booking", Err: err}
		}
		return domain.UnavailableError{Err: err}
	}

	if booking.Status == models.StatusCancelled {
		return domain.AlreadyCancelledError{BookingID: bookingID}
	}

	if journey, perr := utils.ParseDate(booking.JourneyDate); perr == nil {
		if utils.DateBeforeToday(journey) {
			return domain.PastJourneyError{JourneyDate: booking.JourneyDate}
		}
	}

	err = intdb.WithTx(s.db(), func(tx *sql.Tx) error {
		flipped, err := s.bookings().SetCancelled(tx, bookingID)
		if err != nil {
			return err
		}
		if !flipped {
			return domain.AlreadyCancelledError{BookingID: bookingID}
		}
		return s.trains().ReleaseSeats(tx, booking.TrainID, booking.Passengers)
	})
	if err != nil {
		if domain.IsAlreadyCancelled(err) {
			return err
		}
		return domain.UnavailableError{Err: err}
	}

	utils.LogEvent(s.RequestID, "booking", "cancel",
		fmt.Sprintf("booking_id=%d train_id=%d seats_released=%d", bookingID, booking.TrainID, booking.Passengers))
	return nil
}

// ListByUser returns the caller's bookings, newest first.
func (s BookingService) ListByUser(userID int64) ([]models.BookingSummary, error) {
	out, err := s.bookings().GetByUser(userID)
	if err != nil {
		return nil, domain.UnavailableError{Err: err}
	}
	return out, nil
}

// Detail returns one booking with its passenger list, scoped to the
// owner.
func (s BookingService) Detail(userID, bookingID int64) (models.BookingSummary, []models.Passenger, error) {
	booking, err := s.bookings().GetByIDForUser(bookingID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return booking, nil, domain.NotFoundError{Resource: "booking", Err: err}
		}
		return booking, nil, domain.UnavailableError{Err: err}
	}

	passengers, err := s.bookings().ListPassengers(bookingID)
	if err != nil {
		return booking, nil, domain.UnavailableError{Err: err}
	}
	return booking, passengers, nil
}

// PNRStatus is the public lookup; no authentication, the code itself
// is the capability.
func (s BookingService) PNRStatus(pnr string) (models.PNRStatus, error) {
	var out models.PNRStatus
	if strings.TrimSpace(pnr) == "" {
		return out, domain.ValidationError{Field: "pnr", Msg: "PNR number is required"}
	}
	out, err := s.bookings().GetByPNR(pnr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return out, domain.NotFoundError{Resource: "PNR", Err: err}
		}
		return out, domain.UnavailableError{Err: err}
	}
	return out, nil
}

func validateCreateInput(in CreateBookingInput) error {
	if in.TrainID <= 0 {
		return domain.ValidationError{Field: "trainId", Msg: "train id is required"}
	}
	if _, err := utils.ParseDate(in.JourneyDate); err != nil {
		return domain.ValidationError{Field: "journeyDate", Msg: "journey date must be YYYY-MM-DD"}
	}
	if len(in.Passengers) == 0 {
		return domain.ValidationError{Field: "passengers", Msg: "at least one passenger is required"}
	}
	if len(in.Passengers) > models.MaxPassengersPerBooking {
		return domain.ValidationError{
			Field: "passengers",
			Msg:   fmt.Sprintf("at most %d passengers per booking", models.MaxPassengersPerBooking),
		}
	}
	for i, p := range in.Passengers {
		if strings.TrimSpace(p.Name) == "" {
			return domain.ValidationError{Field: fmt.Sprintf("passengers[%d].name", i), Msg: "name is required"}
		}
		if p.Age < 1 || p.Age > 120 {
			return domain.ValidationError{Field: fmt.Sprintf("passengers[%d].age", i), Msg: "age must be between 1 and 120"}
		}
		if strings.TrimSpace(p.Gender) == "" {
			return domain.ValidationError{Field: fmt.Sprintf("passengers[%d].gender", i), Msg: "gender is required"}
		}
	}
	return nil
}
