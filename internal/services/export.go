package services

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"

	"TRAVELPLANNER_BACK-END/internal/apperr"
	"TRAVELPLANNER_BACK-END/internal/models"
)

const pdfContentType = "application/pdf"

type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, body []byte) error
	PresignGet(ctx context.Context, key string) (string, error)
}

type ArchiveResult struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

type ExportService struct {
	trips    TripStore
	bookings BookingStore
	expenses ExpenseStore
	store    ObjectStore
	logger   *slog.Logger
	now      func() time.Time
}

// NewExportService takes a nil store when archive storage is not configured.
func NewExportService(trips TripStore, bookings BookingStore, expenses ExpenseStore, store ObjectStore, logger *slog.Logger) *ExportService {
	return &ExportService{trips: trips, bookings: bookings, expenses: expenses, store: store, logger: logger, now: time.Now}
}

// RenderPDF returns the trip summary document and the trip it was built from.
func (s *ExportService) RenderPDF(ctx context.Context, userID, tripID uuid.UUID) ([]byte, *models.Trip, error) {
	trip, err := ownedTrip(ctx, s.trips, tripID, userID)
	if err != nil {
		return nil, nil, err
	}
	bookings, err := s.bookings.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, nil, storeErr(err, "bookings")
	}
	expenses, err := s.expenses.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, nil, storeErr(err, "expenses")
	}

	doc, err := renderTripPDF(trip, bookings, expenses, s.now())
	if err != nil {
		return nil, nil, apperr.Internal("failed to render itinerary", err)
	}
	return doc, trip, nil
}

func (s *ExportService) Archive(ctx context.Context, userID, tripID uuid.UUID) (*ArchiveResult, error) {
	if s.store == nil {
		return nil, apperr.BadRequest("export storage is not configured", nil)
	}

	doc, trip, err := s.RenderPDF(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("exports/%s/%s-%d.pdf", userID, trip.ID, s.now().Unix())
	if err := s.store.Put(ctx, key, pdfContentType, doc); err != nil {
		return nil, apperr.Integration("failed to upload itinerary", err)
	}
	url, err := s.store.PresignGet(ctx, key)
	if err != nil {
		return nil, apperr.Integration("failed to sign download url", err)
	}

	s.logger.Info("itinerary archived", "trip_id", trip.ID, "key", key)
	return &ArchiveResult{Key: key, URL: url}, nil
}

func renderTripPDF(trip *models.Trip, bookings []models.Booking, expenses []models.Expense, generated time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr(trip.Destination), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, tr(fmt.Sprintf("%s, %s", trip.Destination, trip.Country)), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("%s to %s  |  Budget %.2f  |  %s",
		trip.StartDate.Format("2006-01-02"), trip.EndDate.Format("2006-01-02"), trip.Budget, trip.Status), "", 1, "L", false, 0, "")
	if trip.Notes != nil && *trip.Notes != "" {
		pdf.MultiCell(0, 6, tr(*trip.Notes), "", "L", false)
	}
	pdf.Ln(4)

	section(pdf, "Itinerary")
	if len(trip.Itinerary) == 0 {
		pdf.CellFormat(0, 6, "No itinerary planned yet.", "", 1, "L", false, 0, "")
	}
	for _, day := range trip.Itinerary {
		pdf.SetFont("Helvetica", "B", 11)
		heading := fmt.Sprintf("Day %d", day.Day)
		if day.Date != "" {
			heading += " (" + day.Date + ")"
		}
		if day.Title != "" {
			heading += ": " + day.Title
		}
		pdf.CellFormat(0, 6, tr(heading), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		for _, a := range day.Activities {
			pdf.MultiCell(0, 5, tr("- "+a), "", "L", false)
		}
		if day.Notes != "" {
			pdf.MultiCell(0, 5, tr(day.Notes), "", "L", false)
		}
	}
	pdf.Ln(4)

	section(pdf, "Bookings")
	var bookingTotal float64
	for _, b := range bookings {
		pdf.CellFormat(30, 6, string(b.Type), "1", 0, "L", false, 0, "")
		pdf.CellFormat(90, 6, tr(truncate(b.Title, 50)), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, string(b.Status), "1", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, fmt.Sprintf("%.2f", b.Price), "1", 1, "R", false, 0, "")
		bookingTotal += b.Price
	}
	totalRow(pdf, bookingTotal)

	section(pdf, "Expenses")
	var expenseTotal float64
	for _, e := range expenses {
		pdf.CellFormat(30, 6, e.Date.Format("2006-01-02"), "1", 0, "L", false, 0, "")
		pdf.CellFormat(90, 6, tr(truncate(e.Title, 50)), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, string(e.Category), "1", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, fmt.Sprintf("%.2f", e.Amount), "1", 1, "R", false, 0, "")
		expenseTotal += e.Amount
	}
	totalRow(pdf, expenseTotal)

	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(0, 6, "Generated "+generated.UTC().Format(time.RFC3339), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, title, "B", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
}

func totalRow(pdf *gofpdf.Fpdf, total float64) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(150, 6, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("%.2f", total), "1", 1, "R", false, 0, "")
	pdf.Ln(4)
}

func truncate(s string, n int) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= n {
		return string(r)
	}
	return string(r[:n-1]) + "..."
}
