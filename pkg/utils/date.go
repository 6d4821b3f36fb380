package utils

import "time"

// ParseDate interpreta AAAA-MM-DD como meia-noite em loc. String vazia devolve o zero de time.Time.
func ParseDate(dateStr string, loc *time.Location) (*time.Time, error) {
	var date time.Time

	if loc == nil {
		loc = time.UTC
	}

	if dateStr != "" {
		incomingDate, err := time.ParseInLocation(time.DateOnly, dateStr, loc)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}
