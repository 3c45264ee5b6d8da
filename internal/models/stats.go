package models

// Metrics holds the headline numbers for a filtered view.
type Metrics struct {
	Total     int64
	Average   float64 // mean over hourly rows, not a per-day mean
	Rows      int
	PeakHour  int
	PeakCount int64
	HasPeak   bool
}

// HasData reports whether the filtered view contained any rows.
func (m Metrics) HasData() bool {
	return m.Rows > 0
}

// GroupTotal is the summed count for one categorical code.
type GroupTotal struct {
	Code  int
	Label string
	Total int64
}

// MonthlyTrend holds per-calendar-month sums over the filtered view.
// Months always has twelve slots, January first.
type MonthlyTrend struct {
	Months [12]float64
	Years  []YearSeries
	Rows   int
}

// YearSeries is the monthly breakdown for a single year.
type YearSeries struct {
	Year   int
	Months [12]float64
}

// HasData reports whether the filtered view contained any rows. A view whose
// counts are all zero still has data.
func (t MonthlyTrend) HasData() bool {
	return t.Rows > 0
}

// Values returns the twelve monthly sums as a slice.
func (t MonthlyTrend) Values() []float64 {
	out := make([]float64, len(t.Months))
	copy(out, t.Months[:])
	return out
}

// MaxIndex returns the index of the first group holding the largest total,
// or -1 when there are no groups.
func MaxIndex(groups []GroupTotal) int {
	idx := -1
	var best int64
	for i, g := range groups {
		if idx == -1 || g.Total > best {
			idx = i
			best = g.Total
		}
	}
	return idx
}
