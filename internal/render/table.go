package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"bitbucket.org/crgw/flexrates/internal/schema"
	"bitbucket.org/crgw/flexrates/internal/search"
	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"
)

const NotAvailable = "N/A"

// Table is a price matrix laid out for printing: pickup dates as columns,
// dropoff dates as rows. Header starts with a blank corner cell and every row
// starts with its dropoff date.
type Table struct {
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

type options struct {
	pickups  []string
	dropoffs []string
	fixed    bool
}

type Option func(*options)

// WithAxes lays the table out over the given dates instead of the ones
// present in the matrix, so dates without any quote still get a column or row.
func WithAxes(pickups, dropoffs []string) Option {
	return func(o *options) {
		o.pickups = pickups
		o.dropoffs = dropoffs
		o.fixed = true
	}
}

func NewTable(matrix *search.Matrix, opts ...Option) Table {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	if !o.fixed {
		o.pickups = matrix.PickupDates()
		o.dropoffs = matrix.DropoffDates()
	}

	table := Table{
		Header: append([]string{""}, o.pickups...),
		Rows:   make([][]string, 0, len(o.dropoffs)),
	}

	for _, dropoff := range o.dropoffs {
		row := make([]string, 0, len(o.pickups)+1)
		row = append(row, dropoff)

		for _, pickup := range o.pickups {
			quote, ok := matrix.Lookup(pickup, dropoff)
			if !ok {
				row = append(row, NotAvailable)
				continue
			}

			row = append(row, Cell(quote))
		}

		table.Rows = append(table.Rows, row)
	}

	return table
}

func Cell(quote search.BestQuote) string {
	return fmt.Sprintf("$%s (%s)", FormatPrice(quote.Price), quote.ClassName)
}

// FormatPrice prints whole amounts with a single decimal (45.0) and anything
// else in its shortest exact form (45.25).
func FormatPrice(price decimal.Decimal) string {
	if price.Equal(price.Truncate(0)) {
		return price.StringFixed(1)
	}

	return price.String()
}

func Print(w io.Writer, table Table) {
	writer := tablewriter.NewWriter(w)
	writer.SetAutoFormatHeaders(false)
	writer.SetAutoWrapText(false)
	writer.SetAlignment(tablewriter.ALIGN_LEFT)
	writer.SetHeader(table.Header)
	writer.AppendBulk(table.Rows)
	writer.Render()
}

func JSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(v)
}

// PrintSummary lists one reservation total per vehicle class.
func PrintSummary(w io.Writer, summary []schema.VehicleQuote) {
	fmt.Fprintln(w, "Summary of Reservation Totals by Vehicle Class:")
	for _, quote := range summary {
		fmt.Fprintf(w, "%s: $%s\n", quote.ClassName, quote.Total.StringFixed(2))
	}
}

// PrintLocations lists locations numbered from 1, the way they are offered
// for selection.
func PrintLocations(w io.Writer, locations []schema.Location) {
	writer := tablewriter.NewWriter(w)
	writer.SetAutoFormatHeaders(false)
	writer.SetAutoWrapText(false)
	writer.SetAlignment(tablewriter.ALIGN_LEFT)
	writer.SetHeader([]string{"#", "Code", "Name", "Address", "City"})

	for i, location := range locations {
		writer.Append([]string{
			strconv.Itoa(i + 1),
			location.Code,
			location.Name,
			location.Address.Line1,
			location.Address.City,
		})
	}

	writer.Render()
}
