package billing

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"
	"github.com/shopspring/decimal"

	"frontdesk/internal/domain"
)

func buildFolioPDF(hotel string, b domain.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Guest Folio", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, hotel)
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Folio FOL-%d    Issued %s", b.ID, time.Now().Format("2006-01-02 15:04")))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Guest")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 12)
	for _, line := range []string{
		"Name      : " + orDash(b.GuestName),
		"Phone     : " + orDash(b.Phone),
		"Email     : " + orDash(b.Email),
		"Room      : " + orDash(b.RoomNumber),
		fmt.Sprintf("Stay      : %s to %s (%d night(s))", b.CheckInDate, b.CheckOutDate, b.Nights()),
		"Status    : " + string(b.Status),
	} {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Charges")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	row := func(label string, v decimal.Decimal) {
		pdf.CellFormat(80, 7, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(50, 7, v.StringFixed(2), "", 1, "R", false, 0, "")
	}
	row("Total amount", b.Amount)
	row("Received", b.Advance)
	pdf.SetFont("Helvetica", "B", 12)
	row("Balance due", b.Balance)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	payment := "Payment : " + string(b.PaymentStatus)
	if b.PaymentMethod != "" {
		payment += " (" + string(b.PaymentMethod) + ")"
	}
	pdf.Cell(0, 6, payment)
	pdf.Ln(6)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), fmt.Sprintf("FOLIO_%d_%s.pdf", b.ID, filenamePart(b.GuestName)), nil
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func filenamePart(s string) string {
	var sb strings.Builder
	for _, r := range strings.TrimSpace(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			sb.WriteRune('_')
		}
	}
	if sb.Len() == 0 {
		return "guest"
	}
	return sb.String()
}
