package handlers

import "encoding/json"

// optionalID is a reference field in a partial update. It tells an absent
// field (leave the stored value alone) apart from an explicit null
// (clear the reference).
type optionalID struct {
	Set   bool
	Value *uint
}

func (o *optionalID) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}
