package utils

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// ToJSON marshals v into a gorm JSON column value. Free-form info and mount
// payloads are stored verbatim, never interpreted.
func ToJSON(v any) datatypes.JSON {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return datatypes.JSON(b)
}
