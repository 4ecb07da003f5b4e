package services

import (
	"encoding/csv"
	"io"

	"github.com/artistycode/studio-api/models"
)

// CSV exports back the dashboard's spreadsheet download buttons.

// WriteOrdersCSV serialises the order listing to CSV.
func WriteOrdersCSV(w io.Writer, orders []models.OrderItem) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write([]string{"ID", "Resource", "Buyer Name", "Buyer Email", "Buyer Number", "Price", "Free", "Delivered", "Note", "Created At"}); err != nil {
		return err
	}
	for _, o := range orders {
		record := []string{
			o.ID,
			o.ResourceTitle,
			o.BuyerName,
			o.BuyerEmail,
			o.BuyerNumber,
			o.Price,
			formatBool(o.IsFree),
			formatBool(o.Delivered),
			o.Note,
			o.CreatedAt.Format("2006-01-02 15:04"),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteRegistrationsCSV serialises volunteer registrations to CSV. Signatures
// are deliberately excluded.
func WriteRegistrationsCSV(w io.Writer, registrations []models.Registration) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write([]string{"ID", "First Name", "Last Name", "Email", "Number", "Address", "Emergency Contact", "Emergency Number", "Relation", "Status", "Date"}); err != nil {
		return err
	}
	for _, r := range registrations {
		record := []string{
			r.ID,
			r.FirstName,
			r.LastName,
			r.Email,
			r.Number,
			r.Address,
			r.EmergencyContactName,
			r.EmergencyContactNumber,
			r.EmergencyContactRelation,
			r.Status,
			r.Date.Format("2006-01-02"),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteTransactionsCSV serialises the ledger records to CSV.
func WriteTransactionsCSV(w io.Writer, transactions []models.Transaction) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write([]string{"ID", "Date", "Project", "Category", "Amount", "Due Amount", "Notes"}); err != nil {
		return err
	}
	for _, t := range transactions {
		record := []string{
			t.ID,
			t.Date.Format("2006-01-02"),
			t.Project,
			t.Category,
			t.Amount,
			t.DueAmount,
			t.Notes,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func formatBool(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
