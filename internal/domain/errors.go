package domain

import (
	"errors"
	"fmt"
)

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

// InsufficientSeatsError reports how many seats are actually left so
// the caller can adjust the request.
type InsufficientSeatsError struct {
	TrainID   int64
	Available int
}

func (e InsufficientSeatsError) Error() string {
	return fmt.Sprintf("only %d seats available for this train", e.Available)
}

type AlreadyCancelledError struct {
	BookingID int64
}

func (e AlreadyCancelledError) Error() string {
	return "booking is already cancelled"
}

type PastJourneyError struct {
	JourneyDate string
}

func (e PastJourneyError) Error() string {
	return "cannot cancel past journeys"
}

// UnavailableError covers storage and dependency failures. Internal
// detail stays in Err for logs; the message shown to callers is generic.
type UnavailableError struct {
	Msg string
	Err error
}

func (e UnavailableError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "service unavailable"
}

func (e UnavailableError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsInsufficientSeats(err error) bool {
	var target InsufficientSeatsError
	return errors.As(err, &target)
}

func IsAlreadyCancelled(err error) bool {
	var target AlreadyCancelledError
	return errors.As(err, &target)
}

func IsPastJourney(err error) bool {
	var target PastJourneyError
	return errors.As(err, &target)
}

func IsUnavailable(err error) bool {
	var target UnavailableError
	return errors.As(err, &target)
}
