package enum

import (
	"encoding/json"
	"fmt"
)

// CatalogKind discriminates the two shapes of catalog payloads. Incoming
// documents must carry an explicit "kind" tag; the cart never guesses the
// shape from which fields happen to be present.
type CatalogKind int

const (
	CatalogKindUnknown  CatalogKind = 0
	CatalogKindMenuItem CatalogKind = 1
	CatalogKindDeal     CatalogKind = 2
)

func (k CatalogKind) String() string {
	switch k {
	case CatalogKindMenuItem:
		return "menuItem"
	case CatalogKindDeal:
		return "deal"
	}
	return "unknown"
}

func (k CatalogKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *CatalogKind) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	switch str {
	case "menuItem":
		*k = CatalogKindMenuItem
	case "deal":
		*k = CatalogKindDeal
	default:
		return fmt.Errorf("unknown catalog kind %q", str)
	}
	return nil
}
