package rational

import (
	"database/sql/driver"
	"fmt"
)

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// Both quoted and unquoted fractions are accepted, null is a no-op.
// See also constructor [Parse].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (r *Rational) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	v, err := Parse(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Rational{}, err)
	}
	*r = v
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns a quoted fraction, for example "-5/3".
// See also method [Rational.String].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (r Rational) MarshalJSON() ([]byte, error) {
	text := make([]byte, 0, 43)
	text = append(text, '"')
	text = r.append(text)
	text = append(text, '"')
	return text, nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (r *Rational) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Rational{}, err)
	}
	*r = v
	return nil
}

// AppendText implements the [encoding.TextAppender] interface.
// See also method [Rational.String].
//
// [encoding.TextAppender]: https://pkg.go.dev/encoding#TextAppender
func (r Rational) AppendText(text []byte) ([]byte, error) {
	return r.append(text), nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// See also method [Rational.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (r Rational) MarshalText() ([]byte, error) {
	return r.AppendText(nil)
}

// UnmarshalBinary implements the [encoding.BinaryUnmarshaler] interface.
// The binary form is the same as the text form.
// See also constructor [Parse].
//
// [encoding.BinaryUnmarshaler]: https://pkg.go.dev/encoding#BinaryUnmarshaler
func (r *Rational) UnmarshalBinary(data []byte) error {
	v, err := Parse(string(data))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Rational{}, err)
	}
	*r = v
	return nil
}

// AppendBinary implements the [encoding.BinaryAppender] interface.
//
// [encoding.BinaryAppender]: https://pkg.go.dev/encoding#BinaryAppender
func (r Rational) AppendBinary(data []byte) ([]byte, error) {
	return r.append(data), nil
}

// MarshalBinary implements the [encoding.BinaryMarshaler] interface.
//
// [encoding.BinaryMarshaler]: https://pkg.go.dev/encoding#BinaryMarshaler
func (r Rational) MarshalBinary() ([]byte, error) {
	return r.AppendBinary(nil)
}

// UnmarshalBSONValue implements the [v2/bson.ValueUnmarshaler] interface.
// See also constructor [Parse].
//
// [v2/bson.ValueUnmarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueUnmarshaler
func (r *Rational) UnmarshalBSONValue(typ byte, data []byte) error {
	// constants are from https://bsonspec.org/spec.html
	var err error
	switch typ {
	case 2:
		var v Rational
		v, err = parseBSONString(data)
		if err == nil {
			*r = v
		}
	case 10:
		// null, do nothing
	default:
		err = fmt.Errorf("BSON type %d is not supported", typ)
	}
	if err != nil {
		err = fmt.Errorf("converting from BSON type %d to %T: %w", typ, Rational{}, err)
	}
	return err
}

// MarshalBSONValue implements the [v2/bson.ValueMarshaler] interface.
// The rational is stored as a BSON string holding the fraction.
//
// [v2/bson.ValueMarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueMarshaler
func (r Rational) MarshalBSONValue() (typ byte, data []byte, err error) {
	return 2, r.bsonString(), nil
}

// parseBSONString parses a BSON string to a rational.
// The byte order of the input data must be little-endian.
func parseBSONString(data []byte) (Rational, error) {
	if len(data) < 4 {
		return Rational{}, fmt.Errorf("%w: invalid data length %v", ErrInvalidFormat, len(data))
	}
	u := uint32(data[0])
	u |= uint32(data[1]) << 8
	u |= uint32(data[2]) << 16
	u |= uint32(data[3]) << 24
	l := int(int32(u)) //nolint:gosec
	if l < 1 || len(data) < l+4 {
		return Rational{}, fmt.Errorf("%w: invalid string length %v", ErrInvalidFormat, l)
	}
	if data[l+4-1] != 0 {
		return Rational{}, fmt.Errorf("%w: invalid null terminator %v", ErrInvalidFormat, data[l+4-1])
	}
	return Parse(string(data[4 : l+4-1]))
}

// bsonString returns the BSON string representation of the rational.
// The byte order of the result is little-endian.
func (r Rational) bsonString() []byte {
	data := make([]byte, 4, 4+42)
	data = r.append(data)
	data = append(data, 0)
	l := len(data) - 4
	data[0] = byte(l)
	data[1] = byte(l >> 8)
	data[2] = byte(l >> 16)
	data[3] = byte(l >> 24)
	return data
}

// Scan implements the [sql.Scanner] interface.
// Strings and byte slices are parsed with [Parse],
// integers are converted with [NewFromInt64].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (r *Rational) Scan(value any) error {
	var v Rational
	var err error
	switch value := value.(type) {
	case string:
		v, err = Parse(value)
	case []byte:
		v, err = Parse(string(value))
	case int64:
		v = NewFromInt64(value)
	case nil:
		err = fmt.Errorf("%T does not support null values, use %T or *%T", Rational{}, NullRational{}, Rational{})
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		return fmt.Errorf("converting from %T to %T: %w", value, Rational{}, err)
	}
	*r = v
	return nil
}

// Value implements the [driver.Valuer] interface.
// The rational is stored as a string holding the fraction.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (r Rational) Value() (driver.Value, error) {
	return r.String(), nil
}

// NullRational represents a rational that can be null.
// Its zero value is null.
// NullRational is not thread-safe.
type NullRational struct {
	Rational Rational
	Valid    bool
}

// Scan implements the [sql.Scanner] interface.
// See also method [Rational.Scan].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *NullRational) Scan(value any) error {
	if value == nil {
		n.Rational = Rational{}
		n.Valid = false
		return nil
	}
	var v Rational
	if err := v.Scan(value); err != nil {
		return err
	}
	n.Rational, n.Valid = v, true
	return nil
}

// Value implements the [driver.Valuer] interface.
// See also method [Rational.Value].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n NullRational) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Rational.Value()
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also method [Rational.UnmarshalJSON].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (n *NullRational) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		n.Rational = Rational{}
		n.Valid = false
		return nil
	}
	var v Rational
	if err := v.UnmarshalJSON(text); err != nil {
		return err
	}
	n.Rational, n.Valid = v, true
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// See also method [Rational.MarshalJSON].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (n NullRational) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return n.Rational.MarshalJSON()
}

// UnmarshalBSONValue implements the [v2/bson.ValueUnmarshaler] interface.
// See also method [Rational.UnmarshalBSONValue].
//
// [v2/bson.ValueUnmarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueUnmarshaler
func (n *NullRational) UnmarshalBSONValue(typ byte, data []byte) error {
	if typ == 10 {
		n.Rational = Rational{}
		n.Valid = false
		return nil
	}
	var v Rational
	if err := v.UnmarshalBSONValue(typ, data); err != nil {
		return err
	}
	n.Rational, n.Valid = v, true
	return nil
}

// MarshalBSONValue implements the [v2/bson.ValueMarshaler] interface.
// See also method [Rational.MarshalBSONValue].
//
// [v2/bson.ValueMarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueMarshaler
func (n NullRational) MarshalBSONValue() (typ byte, data []byte, err error) {
	if !n.Valid {
		return 10, nil, nil
	}
	return n.Rational.MarshalBSONValue()
}
