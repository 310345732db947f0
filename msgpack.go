package rational

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v4"
)

// MarshalMsgpack implements the [msgpack.Marshaler] interface.
// The rational is encoded as a msgpack string holding the fraction.
// See also method [Rational.String].
//
// [msgpack.Marshaler]: https://pkg.go.dev/github.com/vmihailenco/msgpack/v4#Marshaler
func (r Rational) MarshalMsgpack() ([]byte, error) {
	return msgpack.Marshal(r.String())
}

// UnmarshalMsgpack implements the [msgpack.Unmarshaler] interface.
// The fraction does not have to be in lowest terms.
// See also constructor [Parse].
//
// [msgpack.Unmarshaler]: https://pkg.go.dev/github.com/vmihailenco/msgpack/v4#Unmarshaler
func (r *Rational) UnmarshalMsgpack(data []byte) error {
	var s string
	if err := msgpack.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Rational{}, err)
	}
	v, err := Parse(s)
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Rational{}, err)
	}
	*r = v
	return nil
}
