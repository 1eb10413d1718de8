package utils

import "time"

// ParseDate interpreta datas no formato YYYY-MM-DD. String vazia retorna nil.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// EndOfDay retorna o último instante do dia da data informada
func EndOfDay(date time.Time) time.Time {
	return date.Add(24*time.Hour - time.Nanosecond)
}
