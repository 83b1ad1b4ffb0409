package model

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	booking "railbook/internal/domains/booking/model"
	"railbook/shared/constant"
	"railbook/shared/timezone"

	"github.com/phpdave11/gofpdf"
)

const (
	Directory = "tickets"
	extension = ".pdf"

	fontFamily = "Helvetica"
	lineHeight = 7
)

func FileName(pnr string) string {
	return pnr + extension
}

var passengerColumns = []struct {
	title string
	width float64
}{
	{title: "#", width: 10},
	{title: "Name", width: 70},
	{title: "Age", width: 20},
	{title: "Gender", width: 25},
	{title: "Seat", width: 30},
}

// Render draws the e-ticket of a booking as a single A4 page.
func Render(b booking.Booking) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket "+b.PNR, false)
	pdf.AddPage()

	pdf.SetFont(fontFamily, "B", 18)
	pdf.Cell(0, 10, "ELECTRONIC RESERVATION SLIP")
	pdf.Ln(12)

	pdf.SetFont(fontFamily, "B", 14)
	pdf.Cell(0, 8, "PNR: "+b.PNR)
	pdf.Ln(10)

	pdf.SetFont(fontFamily, "", 12)

	for _, line := range []string{
		fmt.Sprintf("Train        : %s %s", b.TrainNumber, b.TrainName),
		fmt.Sprintf("From / To    : %s -> %s", b.FromStation, b.ToStation),
		fmt.Sprintf("Journey date : %s, departs %s", b.JourneyDate.Format(constant.JourneyDateFormat), b.DepartureTime),
		fmt.Sprintf("Class        : %s (%s)", b.ClassType.Name(), b.ClassType),
		fmt.Sprintf("Status       : %s", strings.ToUpper(string(b.Status))),
		fmt.Sprintf("Booked at    : %s", timezone.Format(b.BookedAt, "2006-01-02 15:04")),
	} {
		pdf.Cell(0, lineHeight, line)
		pdf.Ln(lineHeight)
	}

	pdf.Ln(4)
	pdf.SetFont(fontFamily, "B", 11)

	for _, column := range passengerColumns {
		pdf.CellFormat(column.width, lineHeight, column.title, "1", 0, "L", false, 0, "")
	}

	pdf.Ln(-1)
	pdf.SetFont(fontFamily, "", 11)

	for idx, passenger := range b.Passengers {
		cells := []string{
			strconv.Itoa(idx + 1),
			passenger.Name,
			strconv.Itoa(passenger.Age),
			string(passenger.Gender),
			passenger.AssignedSeat,
		}

		for col, cell := range cells {
			pdf.CellFormat(passengerColumns[col].width, lineHeight, cell, "1", 0, "L", false, 0, "")
		}

		pdf.Ln(-1)
	}

	pdf.Ln(6)
	pdf.SetFont(fontFamily, "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total fare: INR %d (incl. GST and reservation charges)", b.TotalFare))
	pdf.Ln(10)

	pdf.SetFont(fontFamily, "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Paid by %s, reference %s", b.PaymentMethod, b.PaymentReference))
	pdf.Ln(8)

	pdf.SetFont(fontFamily, "I", 10)
	pdf.MultiCell(0, 6, "Carry a valid photo identity card during the journey.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render ticket: %w", err)
	}

	return buf.Bytes(), nil
}
