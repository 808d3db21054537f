package contribgif

// DaysPerWeek is the number of rows in a contribution grid.
const DaysPerWeek = 7

// Day is a single cell of the contribution calendar.
type Day struct {
	Count int    `json:"contributionCount"`
	Date  string `json:"date"`
}

// Week is a column of the calendar, Sunday first. The API may return a short
// final (or first) week; see Padded.
type Week []Day

// Calendar is the ordered list of weeks returned for a user.
type Calendar []Week

// Padded returns the week extended with zero-count days up to DaysPerWeek
// entries. Extra entries past DaysPerWeek are dropped.
func (w Week) Padded() [DaysPerWeek]Day {
	var days [DaysPerWeek]Day
	copy(days[:], w)
	return days
}

// Cols is the number of grid columns needed to draw the calendar.
func (c Calendar) Cols() int {
	return len(c)
}

// Total sums every day's count.
func (c Calendar) Total() int {
	var total int
	for _, week := range c {
		for _, day := range week {
			total += day.Count
		}
	}
	return total
}
