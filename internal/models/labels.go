package models

import "fmt"

var seasonLabels = map[int]string{
	1: "Spring",
	2: "Summer",
	3: "Fall",
	4: "Winter",
}

var weekdayLabels = map[int]string{
	0: "Sunday",
	1: "Monday",
	2: "Tuesday",
	3: "Wednesday",
	4: "Thursday",
	5: "Friday",
	6: "Saturday",
}

// MonthLabels are the x-axis labels of the monthly trend chart.
var MonthLabels = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// SeasonLabel maps a season code to its name.
func SeasonLabel(code int) string {
	if l, ok := seasonLabels[code]; ok {
		return l
	}
	return fmt.Sprintf("Unknown (%d)", code)
}

// WeekdayLabel maps a weekday code (Sunday=0) to its name.
func WeekdayLabel(code int) string {
	if l, ok := weekdayLabels[code]; ok {
		return l
	}
	return fmt.Sprintf("Unknown (%d)", code)
}

// MonthLabel maps a calendar month (1-12) to its abbreviation.
func MonthLabel(month int) string {
	if month < 1 || month > 12 {
		return fmt.Sprintf("Unknown (%d)", month)
	}
	return MonthLabels[month-1]
}
