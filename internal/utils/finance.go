package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Currency amounts carry three decimal places (dinar/fils convention).
// Every monetary function rounds its result with Round3 and degrades to
// zero/empty on invalid input instead of returning an error, because these
// functions run on every keystroke-driven recompute.

const (
	DateLayout = "2006-01-02"

	// MunicipalityFeeRate is the fixed 3% levied on the rent base.
	MunicipalityFeeRate = 0.03

	// GracePeriodDivisor converts a monthly rent into a daily rate.
	GracePeriodDivisor = 30
)

// Date represents a calendar date
type Date struct {
	Year  int
	Month int
	Day   int
}

// ParseDate converts a yyyy-mm-dd formatted string into a Date struct
func ParseDate(dateStr string) (Date, error) {
	parts := strings.Split(dateStr, "-")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("invalid date format, expected yyyy-mm-dd")
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return Date{}, fmt.Errorf("invalid year: %v", err)
	}

	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return Date{}, fmt.Errorf("invalid month: %v", err)
	}

	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return Date{}, fmt.Errorf("invalid day: %v", err)
	}

	if month < 1 || month > 12 {
		return Date{}, fmt.Errorf("month must be between 1 and 12")
	}

	if day < 1 || day > 31 {
		return Date{}, fmt.Errorf("day must be between 1 and 31")
	}

	return Date{Year: year, Month: month, Day: day}, nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// DaysInMonth returns the number of days in a given month
func DaysInMonth(year, month int) int {
	if month == 2 {
		// Check for leap year
		if (year%4 == 0 && year%100 != 0) || (year%400 == 0) {
			return 29
		}
		return 28
	}

	// Months with 30 days: April, June, September, November
	if month == 4 || month == 6 || month == 9 || month == 11 {
		return 30
	}

	return 31
}

// Round3 rounds to exactly three decimal places. Two-decimal rounding loses
// sub-unit precision and must never be substituted.
func Round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}

// AddMonthsClamped adds months to a date with same-day-of-month semantics,
// clamping the day to the last day of the target month (Jan 31 + 1 month is
// Feb 28/29, not Mar 2).
func AddMonthsClamped(d Date, months int) Date {
	total := (d.Month - 1) + months
	year := d.Year + total/12
	month := total%12 + 1
	if month < 1 {
		month += 12
		year--
	}
	day := d.Day
	if max := DaysInMonth(year, month); day > max {
		day = max
	}
	return Date{Year: year, Month: month, Day: day}
}

// CalcEndDate returns startDate plus durationMonths, same day of month.
// Returns "" when the start date is unparseable or the duration is not
// positive.
func CalcEndDate(startDate string, durationMonths int) string {
	if durationMonths < 1 {
		return ""
	}
	start, err := ParseDate(startDate)
	if err != nil {
		return ""
	}
	return AddMonthsClamped(start, durationMonths).String()
}

// DueDateForPeriod returns the rent due date of the period starting
// periodOffsetMonths after startDate, on dueDay of that month. The due day
// clamps to the last day of the month when it overshoots. Returns "" on
// invalid input.
func DueDateForPeriod(startDate string, periodOffsetMonths, dueDay int) string {
	start, err := ParseDate(startDate)
	if err != nil {
		return ""
	}
	d := AddMonthsClamped(start, periodOffsetMonths)
	if dueDay >= 1 && dueDay <= 31 {
		d.Day = dueDay
		if max := DaysInMonth(d.Year, d.Month); d.Day > max {
			d.Day = max
		}
	}
	return d.String()
}

// DateDiffInDays returns to - from in whole days, negative when to precedes
// from. Returns 0 when either date is unparseable.
func DateDiffInDays(from, to string) int {
	f, err := time.Parse(DateLayout, from)
	if err != nil {
		return 0
	}
	t, err := time.Parse(DateLayout, to)
	if err != nil {
		return 0
	}
	return int(t.Sub(f).Hours() / 24)
}

// CalcRentBase is the amount fee/tax percentages apply to: total rent for
// the term minus any discount, floored at zero.
func CalcRentBase(totalRent, discount float64) float64 {
	base := totalRent - discount
	if base < 0 {
		return 0
	}
	return base
}

// CalcMunicipalityFees computes the 3% municipality fee on the rent base.
func CalcMunicipalityFees(rentBase float64) float64 {
	if rentBase <= 0 {
		return 0
	}
	return Round3(rentBase * MunicipalityFeeRate)
}

// CalcTotalVAT computes VAT over the whole term.
func CalcTotalVAT(rentBase, vatRate float64) float64 {
	if rentBase <= 0 || vatRate <= 0 {
		return 0
	}
	return Round3(rentBase * vatRate)
}

// CalcMonthlyVAT spreads a term total evenly over the duration. Zero
// duration yields zero rather than dividing.
func CalcMonthlyVAT(totalVAT float64, durationMonths int) float64 {
	if durationMonths <= 0 || totalVAT <= 0 {
		return 0
	}
	return Round3(totalVAT / float64(durationMonths))
}

// CalcOtherTax computes the configurable secondary tax. Inactive (flag off
// or non-positive rate) yields zero for both the term total and the
// monthly share.
func CalcOtherTax(rentBase float64, enabled bool, rate float64, durationMonths int) (total, monthly float64) {
	if !enabled || rate <= 0 || rentBase <= 0 {
		return 0, 0
	}
	total = Round3(rentBase * rate)
	monthly = CalcMonthlyVAT(total, durationMonths)
	return total, monthly
}

// CalcGracePeriodDays is the number of days between the contractual start
// date and the actual rental date, floored at zero. Either date missing or
// unparseable yields zero.
func CalcGracePeriodDays(actualRentalDate, startDate string) int {
	if actualRentalDate == "" || startDate == "" {
		return 0
	}
	days := DateDiffInDays(actualRentalDate, startDate)
	if days < 0 {
		return 0
	}
	return days
}

// CalcGracePeriodAmount charges the grace period at a 30-day monthly rate.
func CalcGracePeriodAmount(monthlyRent float64, graceDays int) float64 {
	if monthlyRent <= 0 || graceDays <= 0 {
		return 0
	}
	return Round3(monthlyRent * float64(graceDays) / GracePeriodDivisor)
}
