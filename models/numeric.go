package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Numeric is the numeric type used by monetary, age and count fields on
// the application form. Form clients send these as numbers, numeric
// strings or garbage; anything unparsable coerces to 0 instead of failing
// the decode. Absence (or JSON null) is kept distinct from 0 so the
// validator can still report "required" for omitted fields.
type Numeric struct {
	Float64 float64
	Defined bool
}

// N builds a defined Numeric.
func N(v float64) Numeric {
	return Numeric{Float64: v, Defined: true}
}

func (n Numeric) MarshalJSON() ([]byte, error) {
	if !n.Defined {
		return []byte("null"), nil
	}
	return json.Marshal(n.Float64)
}

func (n *Numeric) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = Numeric{}
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			v = 0
		}
		*n = Numeric{Float64: v, Defined: true}
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		// Non-numeric input coerces to 0 rather than aborting the decode.
		*n = Numeric{Float64: 0, Defined: true}
		return nil
	}
	*n = Numeric{Float64: v, Defined: true}
	return nil
}

func (n Numeric) Value() (driver.Value, error) {
	return n.Float64, nil
}

func (n *Numeric) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*n = Numeric{}
	case float64:
		*n = Numeric{Float64: v, Defined: true}
	case int64:
		*n = Numeric{Float64: float64(v), Defined: true}
	case []byte:
		f, err := strconv.ParseFloat(string(v), 64)
		if err != nil {
			return fmt.Errorf("cannot scan %q into Numeric", v)
		}
		*n = Numeric{Float64: f, Defined: true}
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("cannot scan %q into Numeric", v)
		}
		*n = Numeric{Float64: f, Defined: true}
	default:
		return fmt.Errorf("cannot scan %T into Numeric", src)
	}
	return nil
}
