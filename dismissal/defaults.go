package dismissal

import "time"

// WeeklyDefaults maps a weekday to a student's standing dismissal type.
// Days without a configured default are simply absent.
type WeeklyDefaults map[time.Weekday]Type

// ForDate looks up the default for the date's weekday. Saturday and Sunday
// have no defined slot and always come back false.
func (w WeeklyDefaults) ForDate(date time.Time) (Type, bool) {
	day := date.Weekday()
	if day == time.Saturday || day == time.Sunday {
		return "", false
	}
	t, ok := w[day]
	return t, ok
}
