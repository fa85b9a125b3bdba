package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ServiceType represents how an order is fulfilled. The numeric values are
// part of the order-service contract and must not be reordered.
type ServiceType int

const (
	ServiceTypeDelivery    ServiceType = 1
	ServiceTypeTakeaway    ServiceType = 2
	ServiceTypeDineIn      ServiceType = 3
	ServiceTypeReservation ServiceType = 4
)

func (s ServiceType) String() string {
	switch s {
	case ServiceTypeDelivery:
		return "Delivery"
	case ServiceTypeTakeaway:
		return "Takeaway"
	case ServiceTypeDineIn:
		return "DineIn"
	case ServiceTypeReservation:
		return "Reservation"
	}
	return "Delivery"
}

// Valid reports whether the value is one of the known service types.
func (s ServiceType) Valid() bool {
	return s >= ServiceTypeDelivery && s <= ServiceTypeReservation
}

func (s ServiceType) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *ServiceType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = ServiceType(i)
		return nil
	}
	switch str {
	case "Delivery":
		*s = ServiceTypeDelivery
	case "Takeaway":
		*s = ServiceTypeTakeaway
	case "DineIn":
		*s = ServiceTypeDineIn
	case "Reservation":
		*s = ServiceTypeReservation
	}
	return nil
}

func (s ServiceType) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *ServiceType) Scan(value interface{}) error {
	if value == nil {
		*s = ServiceTypeDelivery
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = ServiceType(v)
	case int:
		*s = ServiceType(v)
	}
	return nil
}
