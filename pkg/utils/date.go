package utils

import (
	"time"
)

// ParseDate interpreta "2006-01-02" ou um timestamp RFC3339 como dia de calendário
// no fuso informado. String vazia retorna nil.
func ParseDate(dateStr string, loc *time.Location) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	if loc == nil {
		loc = time.Local
	}

	incomingDate, err := time.ParseInLocation(time.DateOnly, dateStr, loc)
	if err != nil {
		timestamp, errTimestamp := time.Parse(time.RFC3339, dateStr)
		if errTimestamp != nil {
			return nil, err
		}
		// Usa apenas a parte de data, como o cliente enviou
		incomingDate = time.Date(timestamp.Year(), timestamp.Month(), timestamp.Day(), 0, 0, 0, 0, loc)
	}

	return &incomingDate, nil
}

func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// EndOfDay retorna 23:59:59.999 do mesmo dia
func EndOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 23, 59, 59, int(999*time.Millisecond), date.Location())
}

func FirstDayOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

func LastDayOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month()+1, 0, 0, 0, 0, 0, date.Location())
}
