package usecase

import (
	"bytes"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"
	"github.com/piresc/chauffeur/internal/pkg/models"
	"github.com/piresc/chauffeur/internal/utils"
)

// RenderReceipt lays out a one-page A4 booking receipt
func RenderReceipt(booking *models.Booking, driver *models.Driver, issuedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking receipt", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING RECEIPT")
	pdf.Ln(12)

	// core fonts are cp1252; currency symbols and accented names need translating
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "", 11)
	line := func(label, value string) {
		pdf.Cell(45, 7, label)
		pdf.Cell(0, 7, tr(safe(value)))
		pdf.Ln(7)
	}

	line("Reference", booking.ID.String())
	line("Issued", issuedAt.Format("2006-01-02 15:04 MST"))
	line("Status", string(booking.Status))
	line("Payment", string(booking.PaymentStatus))
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Journey")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	line("Passenger", booking.CustomerName)
	line("Pickup", booking.PickupLocation)
	line("Drop-off", booking.DropoffLocation)
	line("Pickup time", booking.PickupAt.Format("2006-01-02 15:04 MST"))
	line("Passengers", fmt.Sprintf("%d", booking.Passengers))
	line("Vehicle", booking.VehicleClass)
	if driver != nil {
		line("Driver", driver.Name)
		line("Vehicle plate", driver.VehiclePlate)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, tr("Total: "+utils.FormatMinor(booking.Price, booking.Currency)))
	pdf.Ln(10)

	if notes := utils.StripMarker(booking.Notes, models.PendingPaymentMarker); notes != "" {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 6, tr(notes), "", "", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func safe(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
