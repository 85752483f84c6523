package services

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	intconfig "railway/internal/config"
	"railway/internal/domain"
	"railway/internal/domain/models"
	"railway/internal/repositories"
	"railway/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// TicketService renders a printable e-ticket for a booking.
type TicketService struct {
	Bookings  repositories.BookingRepository
	DB        *sql.DB
	RequestID string
}

func (s TicketService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s TicketService) bookings() repositories.BookingRepository {
	if s.Bookings.DB != nil {
		return s.Bookings
	}
	return repositories.BookingRepository{DB: s.db()}
}

// GenerateETicket builds the PDF for a booking owned by userID.
// Cancelled bookings still render, stamped with their status.
func (s TicketService) GenerateETicket(userID, bookingID int64) ([]byte, string, error) {
	booking, err := s.bookings().GetByIDForUser(bookingID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", domain.NotFoundError{Resource: "booking", Err: err}
		}
		return nil, "", domain.UnavailableError{Err: err}
	}

	passengers, err := s.bookings().ListPassengers(bookingID)
	if err != nil {
		return nil, "", domain.UnavailableError{Err: err}
	}

	utils.LogEvent(s.RequestID, "ticket", "generate_eticket", fmt.Sprintf("booking_id=%d", bookingID))
	return buildETicketPDF(booking, passengers)
}

func buildETicketPDF(b models.BookingSummary, passengers []models.Passenger) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "RAILWAY E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("PNR Number     : %s", b.PNRNumber),
		fmt.Sprintf("Status         : %s", b.Status),
		fmt.Sprintf("Train          : %s (%s)", b.TrainName, b.TrainNumber),
		fmt.Sprintf("Route          : %s -> %s", b.Source, b.Destination),
		fmt.Sprintf("Journey Date   : %s", b.JourneyDate),
		fmt.Sprintf("Departure      : %s", b.DepartureTime),
		fmt.Sprintf("Arrival        : %s", b.ArrivalTime),
		fmt.Sprintf("Duration       : %s", b.Duration),
		fmt.Sprintf("Passengers     : %d", b.Passengers),
		fmt.Sprintf("Total Fare     : %.2f", b.TotalFare),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Passenger List")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	for i, p := range passengers {
		seat := p.SeatNumber
		if seat == "" {
			seat = "-"
		}
		pdf.Cell(0, 6, fmt.Sprintf("%d. %s  (age %d, %s)  seat %s", i+1, p.Name, p.Age, p.Gender, seat))
		pdf.Ln(6)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Carry a valid ID proof for every passenger. This ticket is valid only with the PNR shown above.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ETICKET_%s.pdf", safeFilenamePart(b.PNRNumber))
	return buf.Bytes(), filename, nil
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-")
	out := replacer.Replace(s)
	if out == "" {
		return "ticket"
	}
	return out
}
