// Package jsontime carries timestamps over the wire as epoch milliseconds,
// the unit the browser's Date constructor expects.
package jsontime

import (
	"encoding/json"
	"time"
)

// Milli is a time.Time that serializes to/from Unix milliseconds in JSON.
// Session metadata uses it so clients get a number instead of an RFC 3339
// string.
type Milli time.Time

// NowEpochMilli returns the current time as Milli.
func NowEpochMilli() Milli {
	return Milli(time.Now())
}

// Time returns the underlying time.Time value.
func (ep Milli) Time() time.Time {
	return time.Time(ep)
}

// String returns the time formatted as a string.
func (ep Milli) String() string {
	return time.Time(ep).String()
}

// IsZero reports whether ep represents the zero time instant.
func (ep Milli) IsZero() bool {
	return time.Time(ep).IsZero()
}

// UnmarshalJSON implements json.Unmarshaler.
func (ep *Milli) UnmarshalJSON(b []byte) error {
	var t int64
	if err := json.Unmarshal(b, &t); err != nil {
		return err
	}
	*ep = Milli(time.UnixMilli(t))
	return nil
}

// MarshalJSON implements json.Marshaler.
func (ep Milli) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(ep).UnixMilli())
}
