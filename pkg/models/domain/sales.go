package domain

import (
	"errors"
	"math"
	"slices"
	"strings"
)

var (
	ErrInvalidYear         = errors.New("invalid year")
	ErrEmptyMonth          = errors.New("empty month")
	ErrEmptyVehicleType    = errors.New("empty vehicle type")
	ErrNegativeSales       = errors.New("negative automobile sales")
	ErrNegativeAdvertising = errors.New("negative advertising expenditure")
	ErrNonFiniteMeasure    = errors.New("non-finite measure")
)

// SalesRecord is one row of the historical automobile sales dataset.
type SalesRecord struct {
	Year                   int
	Month                  string
	Recession              bool
	VehicleType            string
	AutomobileSales        float64
	AdvertisingExpenditure float64
	UnemploymentRate       float64
}

func (r SalesRecord) Validate() error {
	if r.Year <= 0 {
		return ErrInvalidYear
	}
	if strings.TrimSpace(r.Month) == "" {
		return ErrEmptyMonth
	}
	if strings.TrimSpace(r.VehicleType) == "" {
		return ErrEmptyVehicleType
	}
	for _, v := range []float64{r.AutomobileSales, r.AdvertisingExpenditure, r.UnemploymentRate} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNonFiniteMeasure
		}
	}
	if r.AutomobileSales < 0 {
		return ErrNegativeSales
	}
	if r.AdvertisingExpenditure < 0 {
		return ErrNegativeAdvertising
	}
	return nil
}

// Dataset is a read-only, ordered collection of sales records.
// It is built once at startup and shared by every report invocation.
type Dataset struct {
	records []SalesRecord
	years   []int
}

// NewDataset copies records so later changes to the input slice are not observed.
func NewDataset(records []SalesRecord) *Dataset {
	ds := &Dataset{records: slices.Clone(records)}

	seen := make(map[int]struct{})
	for _, r := range ds.records {
		if _, ok := seen[r.Year]; ok {
			continue
		}
		seen[r.Year] = struct{}{}
		ds.years = append(ds.years, r.Year)
	}
	slices.Sort(ds.years)
	return ds
}

func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.records)
}

// All returns a copy of every record in load order.
func (d *Dataset) All() []SalesRecord {
	if d == nil {
		return nil
	}
	return slices.Clone(d.records)
}

// Filter returns the records matching keep, in load order.
func (d *Dataset) Filter(keep func(SalesRecord) bool) []SalesRecord {
	if d == nil {
		return nil
	}
	var out []SalesRecord
	for _, r := range d.records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// Years returns the distinct years present in the dataset, ascending.
func (d *Dataset) Years() []int {
	if d == nil {
		return nil
	}
	return slices.Clone(d.years)
}
