package aggregate

import (
	"cmp"
	"slices"
	"strconv"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

type aggregation int

const (
	sum aggregation = iota
	mean
)

// bucket accumulates one group. Buckets are kept in first-seen key order.
type bucket[K comparable] struct {
	key   K
	total float64
	count int
}

func (b bucket[K]) value(agg aggregation) float64 {
	if agg == mean {
		if b.count == 0 {
			return 0
		}
		return b.total / float64(b.count)
	}
	return b.total
}

func groupBy[K comparable](
	records []domain.SalesRecord,
	key func(domain.SalesRecord) K,
	measure func(domain.SalesRecord) float64,
) []bucket[K] {
	index := make(map[K]int)
	var buckets []bucket[K]

	for _, r := range records {
		k := key(r)
		i, ok := index[k]
		if !ok {
			i = len(buckets)
			index[k] = i
			buckets = append(buckets, bucket[K]{key: k})
		}
		buckets[i].total += measure(r)
		buckets[i].count++
	}
	return buckets
}

type pair struct {
	rate        float64
	vehicleType string
}

// monthKey identifies a calendar month by number so "Jan" and "January"
// share a group. Unrecognised labels group on the raw label.
type monthKey struct {
	number int
	label  string
}

func byMonth(r domain.SalesRecord) monthKey {
	if n, ok := MonthNumber(r.Month); ok {
		return monthKey{number: n}
	}
	return monthKey{label: r.Month}
}

func byYear(r domain.SalesRecord) int { return r.Year }
func byVehicleType(r domain.SalesRecord) string { return r.VehicleType }
func byRateAndType(r domain.SalesRecord) pair {
	return pair{rate: r.UnemploymentRate, vehicleType: r.VehicleType}
}

func sales(r domain.SalesRecord) float64 { return r.AutomobileSales }
func advertising(r domain.SalesRecord) float64 { return r.AdvertisingExpenditure }

func yearRows(records []domain.SalesRecord, agg aggregation) []domain.SeriesRow {
	buckets := groupBy(records, byYear, sales)
	slices.SortStableFunc(buckets, func(a, b bucket[int]) int {
		return cmp.Compare(a.key, b.key)
	})

	rows := make([]domain.SeriesRow, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, domain.SeriesRow{
			Key:   strconv.Itoa(b.key),
			Value: b.value(agg),
			Count: b.count,
		})
	}
	return rows
}

func monthRows(records []domain.SalesRecord, agg aggregation) []domain.SeriesRow {
	// Each month is shown under the first spelling seen for it.
	labels := make(map[monthKey]string)
	for _, r := range records {
		k := byMonth(r)
		if _, ok := labels[k]; !ok {
			labels[k] = r.Month
		}
	}

	buckets := groupBy(records, byMonth, sales)
	slices.SortStableFunc(buckets, func(a, b bucket[monthKey]) int {
		return compareMonths(labels[a.key], labels[b.key])
	})

	rows := make([]domain.SeriesRow, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, domain.SeriesRow{
			Key:   labels[b.key],
			Value: b.value(agg),
			Count: b.count,
		})
	}
	return rows
}

func vehicleTypeRows(
	records []domain.SalesRecord,
	measure func(domain.SalesRecord) float64,
	agg aggregation,
) []domain.SeriesRow {
	return stringRows(groupBy(records, byVehicleType, measure), agg)
}

func rateAndTypeRows(records []domain.SalesRecord, agg aggregation) []domain.SeriesRow {
	buckets := groupBy(records, byRateAndType, sales)

	rows := make([]domain.SeriesRow, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, domain.SeriesRow{
			Key:   strconv.FormatFloat(b.key.rate, 'f', -1, 64),
			Split: b.key.vehicleType,
			Value: b.value(agg),
			Count: b.count,
		})
	}
	return rows
}

func stringRows(buckets []bucket[string], agg aggregation) []domain.SeriesRow {
	rows := make([]domain.SeriesRow, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, domain.SeriesRow{
			Key:   b.key,
			Value: b.value(agg),
			Count: b.count,
		})
	}
	return rows
}
