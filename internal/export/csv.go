// Package export renders listings as flat CSV tables with a stable column
// order. Internal ids stay out of user-facing exports and password hashes
// are never written.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"fsj-lavagens/internal/domain"
)

const timeLayout = "2006-01-02 15:04"

// Vehicles writes the vehicle listing using the same column names the bulk
// import expects, so an export re-imports cleanly.
func Vehicles(w io.Writer, vehicles []domain.Vehicle) error {
	rows := [][]string{{"PLATE", "VEHICLE CLASS", "MAKE/MODEL", "REGISTERED AT"}}
	for _, v := range vehicles {
		rows = append(rows, []string{v.Plate, v.Class, v.MakeModel, v.CreatedAt.Format(timeLayout)})
	}
	return write(w, rows)
}

// Suppliers writes the supplier listing.
func Suppliers(w io.Writer, suppliers []domain.Supplier) error {
	rows := [][]string{{"NAME", "TAX ID", "ADDRESS", "REGISTERED AT"}}
	for _, s := range suppliers {
		rows = append(rows, []string{s.Name, s.TaxID, s.Address, s.CreatedAt.Format(timeLayout)})
	}
	return write(w, rows)
}

// Prices writes one supplier's price list.
func Prices(w io.Writer, prices []domain.PriceEntry) error {
	rows := [][]string{{"VEHICLE CLASS", "SERVICE", "AMOUNT"}}
	for _, p := range prices {
		rows = append(rows, []string{p.Class, p.Service, FormatAmount(p.AmountCents)})
	}
	return write(w, rows)
}

// Users writes the user listing. The password column is never exported.
func Users(w io.Writer, users []domain.User) error {
	rows := [][]string{{"NAME", "EMAIL", "ROLE", "REGISTERED AT"}}
	for _, u := range users {
		rows = append(rows, []string{u.Name, u.Email, u.Role, u.CreatedAt.Format(timeLayout)})
	}
	return write(w, rows)
}

// Orders writes the order ledger listing.
func Orders(w io.Writer, orders []domain.WashOrder) error {
	rows := [][]string{{
		"ORDER NUMBER", "PLATES", "DRIVER", "OPERATION", "DATE",
		"START", "END", "STATUS", "AMOUNT", "NOTES", "CREATED BY",
	}}
	for _, o := range orders {
		rows = append(rows, []string{
			o.OrderNumber, o.PlateExpression, o.Driver, o.OperationLabel, o.Date,
			o.StartTime, o.EndTime, o.Status, FormatAmount(o.AmountCents), o.Notes, o.CreatedBy,
		})
	}
	return write(w, rows)
}

// FormatAmount renders centavos as a decimal string.
func FormatAmount(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}

func write(w io.Writer, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
