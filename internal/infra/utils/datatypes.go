package utils

import (
	"time"
)

type Time struct {
	time.Time
}

func (t Time) MarshalJSON() ([]byte, error) {
	formatted := t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
	return []byte(`"` + formatted + `"`), nil
}

func (t *Time) UnmarshalJSON(data []byte) error {
	str := string(data)
	if str == "null" || str == `""` {
		return nil
	}
	parsed, err := time.Parse(`"2006-01-02T15:04:05.000Z07:00"`, str)
	if err != nil {
		parsed, err = time.Parse(`"`+time.RFC3339+`"`, str)
		if err != nil {
			return err
		}
	}
	t.Time = parsed
	return nil
}
