package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// SplitType represents how a bill is divided among payers.
type SplitType int

const (
	SplitTypeEquality SplitType = 0
	SplitTypeItems    SplitType = 1
)

func (s SplitType) String() string {
	names := [...]string{"Equality", "Items"}
	if int(s) < 0 || int(s) >= len(names) {
		return "Equality"
	}
	return names[s]
}

func (s SplitType) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *SplitType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = SplitType(i)
		return nil
	}
	switch str {
	case "Equality":
		*s = SplitTypeEquality
	case "Items":
		*s = SplitTypeItems
	}
	return nil
}

func (s SplitType) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *SplitType) Scan(value interface{}) error {
	if value == nil {
		*s = SplitTypeEquality
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = SplitType(v)
	case int:
		*s = SplitType(v)
	}
	return nil
}
