package search

import (
	"bytes"
	"encoding/json"
	"sort"

	"bitbucket.org/crgw/flexrates/internal/schema"
	"github.com/shopspring/decimal"
)

type BestQuote struct {
	Price     decimal.Decimal `json:"price"`
	ClassName string          `json:"vehicleClass"`
}

// Matrix maps pickup date -> dropoff date -> best quote. Keys are ISO dates,
// so lexicographic order is chronological. Lookups never create entries.
type Matrix struct {
	pickups []string
	rows    map[string]*matrixRow
	size    int
}

type matrixRow struct {
	dropoffs []string
	quotes   map[string]BestQuote
}

func NewMatrix() *Matrix {
	return &Matrix{
		rows: map[string]*matrixRow{},
	}
}

// Record stores quote under pair unless an equal or cheaper quote is already
// held for it. It reports whether the matrix changed.
func (m *Matrix) Record(pair DatePair, quote schema.VehicleQuote) bool {
	pickup, dropoff := pair.PickupKey(), pair.DropoffKey()

	row, ok := m.rows[pickup]
	if !ok {
		row = &matrixRow{quotes: map[string]BestQuote{}}
		m.rows[pickup] = row
		m.pickups = append(m.pickups, pickup)
	}

	current, ok := row.quotes[dropoff]
	if ok && !quote.Total.LessThan(current.Price) {
		return false
	}

	if !ok {
		row.dropoffs = append(row.dropoffs, dropoff)
		m.size++
	}

	row.quotes[dropoff] = BestQuote{
		Price:     quote.Total,
		ClassName: quote.ClassName,
	}

	return true
}

func (m *Matrix) Lookup(pickup, dropoff string) (BestQuote, bool) {
	row, ok := m.rows[pickup]
	if !ok {
		return BestQuote{}, false
	}

	quote, ok := row.quotes[dropoff]
	return quote, ok
}

func (m *Matrix) Len() int {
	return m.size
}

func (m *Matrix) PickupDates() []string {
	pickups := append([]string(nil), m.pickups...)
	sort.Strings(pickups)

	return pickups
}

func (m *Matrix) DropoffDates() []string {
	set := map[string]struct{}{}
	for _, row := range m.rows {
		for _, dropoff := range row.dropoffs {
			set[dropoff] = struct{}{}
		}
	}

	return sortedKeys(set)
}

// Each visits entries in insertion order.
func (m *Matrix) Each(fn func(pickup, dropoff string, quote BestQuote)) {
	for _, pickup := range m.pickups {
		row := m.rows[pickup]
		for _, dropoff := range row.dropoffs {
			fn(pickup, dropoff, row.quotes[dropoff])
		}
	}
}

// Cheapest returns the overall best entry, earliest recorded first on ties.
func (m *Matrix) Cheapest() (pickup string, dropoff string, quote BestQuote, ok bool) {
	m.Each(func(p, d string, q BestQuote) {
		if !ok || q.Price.LessThan(quote.Price) {
			pickup, dropoff, quote, ok = p, d, q, true
		}
	})

	return
}

func (m *Matrix) MarshalJSON() ([]byte, error) {
	var buffer bytes.Buffer
	buffer.WriteByte('{')

	for i, pickup := range m.PickupDates() {
		if i > 0 {
			buffer.WriteByte(',')
		}

		key, _ := json.Marshal(pickup)
		buffer.Write(key)
		buffer.WriteString(":{")

		row := m.rows[pickup]
		dropoffs := append([]string(nil), row.dropoffs...)
		sort.Strings(dropoffs)

		for j, dropoff := range dropoffs {
			if j > 0 {
				buffer.WriteByte(',')
			}

			key, _ := json.Marshal(dropoff)
			value, err := json.Marshal(row.quotes[dropoff])
			if err != nil {
				return nil, err
			}

			buffer.Write(key)
			buffer.WriteByte(':')
			buffer.Write(value)
		}

		buffer.WriteByte('}')
	}

	buffer.WriteByte('}')

	return buffer.Bytes(), nil
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return keys
}
