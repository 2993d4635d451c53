package core

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseCapacity parses a record's "capacity" property into quantities
// by unit. A record without the property declares no capacity and
// yields an empty map. A duplicate unit keeps its last declaration.
// Unlike package declarations, a malformed quantity is an error.
func ParseCapacity(r Record) (map[string]int64, error) {
	out := make(map[string]int64)

	value, present := r.Property(PropCapacity)
	if !present {
		return out, nil
	}

	for _, token := range splitList(value) {
		qtyStr, unit, found := strings.Cut(token, " ")
		unit = strings.TrimSpace(unit)
		if !found || unit == "" {
			return nil, fmt.Errorf("parse capacity token %q: want \"<quantity> <unit>\"", token)
		}
		qty, err := strconv.ParseInt(qtyStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse capacity token %q: %w", token, err)
		}
		out[unit] = qty
	}

	return out, nil
}

// Capacity returns the quantity the record declares for one unit, or
// zero when the unit is not declared.
func Capacity(r Record, unit string) (int64, error) {
	caps, err := ParseCapacity(r)
	if err != nil {
		return 0, err
	}
	return caps[unit], nil
}
