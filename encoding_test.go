package rational

import (
	"bytes"
	"encoding"
	"encoding/json"
	"errors"
	"testing"
)

func TestRational_EncodingInterfaces(t *testing.T) {
	var i any = Rational{}
	if _, ok := i.(json.Marshaler); !ok {
		t.Errorf("%T does not implement json.Marshaler", i)
	}
	if _, ok := i.(encoding.TextMarshaler); !ok {
		t.Errorf("%T does not implement encoding.TextMarshaler", i)
	}
	if _, ok := i.(encoding.BinaryMarshaler); !ok {
		t.Errorf("%T does not implement encoding.BinaryMarshaler", i)
	}
	i = &Rational{}
	if _, ok := i.(json.Unmarshaler); !ok {
		t.Errorf("%T does not implement json.Unmarshaler", i)
	}
	if _, ok := i.(encoding.TextUnmarshaler); !ok {
		t.Errorf("%T does not implement encoding.TextUnmarshaler", i)
	}
	if _, ok := i.(encoding.BinaryUnmarshaler); !ok {
		t.Errorf("%T does not implement encoding.BinaryUnmarshaler", i)
	}
}

func TestRational_MarshalJSON(t *testing.T) {
	tests := []struct {
		r    Rational
		want string
	}{
		{MustNew(-5, 3), `"-5/3"`},
		{MustNew(-18, -32), `"9/16"`},
		{NewFromInt64(-9), `"-9/1"`},
		{Rational{}, `"0/1"`},
	}
	for _, tt := range tests {
		got, err := json.Marshal(tt.r)
		if err != nil {
			t.Errorf("json.Marshal(%v) failed: %v", tt.r, err)
			continue
		}
		if string(got) != tt.want {
			t.Errorf("json.Marshal(%v) = %s, want %s", tt.r, got, tt.want)
		}
	}
}

func TestRational_UnmarshalJSON(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s    string
			want Rational
		}{
			{`"-5/3"`, MustNew(-5, 3)},
			{`"18/-12"`, MustNew(-3, 2)},
			{`"1.25"`, MustNew(5, 4)},
			{`42`, NewFromInt64(42)},
			{`-0.5`, MustNew(-1, 2)},
		}
		for _, tt := range tests {
			var got Rational
			err := json.Unmarshal([]byte(tt.s), &got)
			if err != nil {
				t.Errorf("json.Unmarshal(%s) failed: %v", tt.s, err)
				continue
			}
			if got != tt.want {
				t.Errorf("json.Unmarshal(%s) = %v, want %v", tt.s, got, tt.want)
			}
		}
	})

	t.Run("null", func(t *testing.T) {
		got := MustNew(1, 2)
		err := json.Unmarshal([]byte("null"), &got)
		if err != nil {
			t.Errorf("json.Unmarshal(null) failed: %v", err)
		}
		if got != MustNew(1, 2) {
			t.Errorf("json.Unmarshal(null) = %v, want 1/2", got)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			s    string
			want error
		}{
			"zero denominator": {`"1/0"`, ErrZeroDenominator},
			"invalid":          {`"one half"`, ErrInvalidFormat},
			"overflow":         {`"99999999999999999999"`, ErrOverflow},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				var got Rational
				err := json.Unmarshal([]byte(tt.s), &got)
				if !errors.Is(err, tt.want) {
					t.Errorf("json.Unmarshal(%s) = %v, want %v", tt.s, err, tt.want)
				}
			})
		}
	})
}

func TestRational_JSONRoundTrip(t *testing.T) {
	type payment struct {
		Share  Rational     `json:"share"`
		Refund NullRational `json:"refund"`
	}
	in := payment{Share: MustNew(2, 3)}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("json.Marshal(%v) failed: %v", in, err)
	}
	want := `{"share":"2/3","refund":null}`
	if string(data) != want {
		t.Errorf("json.Marshal(%v) = %s, want %s", in, data, want)
	}
	var out payment
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal(%s) failed: %v", data, err)
	}
	if out != in {
		t.Errorf("json.Unmarshal(%s) = %v, want %v", data, out, in)
	}
}

func TestRational_MarshalText(t *testing.T) {
	tests := []struct {
		r    Rational
		want string
	}{
		{MustNew(-5, 3), "-5/3"},
		{Rational{}, "0/1"},
	}
	for _, tt := range tests {
		got, err := tt.r.MarshalText()
		if err != nil {
			t.Errorf("%v.MarshalText() failed: %v", tt.r, err)
			continue
		}
		if string(got) != tt.want {
			t.Errorf("%v.MarshalText() = %q, want %q", tt.r, got, tt.want)
		}
		var back Rational
		if err := back.UnmarshalText(got); err != nil {
			t.Errorf("UnmarshalText(%q) failed: %v", got, err)
			continue
		}
		if back != tt.r {
			t.Errorf("UnmarshalText(%q) = %v, want %v", got, back, tt.r)
		}
	}

	prefix := []byte("r=")
	got, err := MustNew(9, 16).AppendText(prefix)
	if err != nil {
		t.Errorf("AppendText failed: %v", err)
	}
	if string(got) != "r=9/16" {
		t.Errorf("AppendText(%q) = %q, want %q", prefix, got, "r=9/16")
	}
}

func TestRational_MarshalBinary(t *testing.T) {
	tests := []Rational{
		MustNew(-5, 3),
		NewFromInt64(-9),
		Rational{},
	}
	for _, tt := range tests {
		data, err := tt.MarshalBinary()
		if err != nil {
			t.Errorf("%v.MarshalBinary() failed: %v", tt, err)
			continue
		}
		var got Rational
		if err := got.UnmarshalBinary(data); err != nil {
			t.Errorf("UnmarshalBinary(%q) failed: %v", data, err)
			continue
		}
		if got != tt {
			t.Errorf("UnmarshalBinary(%q) = %v, want %v", data, got, tt)
		}
	}

	t.Run("error", func(t *testing.T) {
		var got Rational
		if err := got.UnmarshalBinary([]byte("1/0")); err == nil {
			t.Errorf("UnmarshalBinary(\"1/0\") did not fail")
		}
	})
}

func TestRational_MarshalBSONValue(t *testing.T) {
	r := MustNew(9, 16)
	typ, data, err := r.MarshalBSONValue()
	if err != nil {
		t.Fatalf("%v.MarshalBSONValue() failed: %v", r, err)
	}
	want := []byte{5, 0, 0, 0, '9', '/', '1', '6', 0}
	if typ != 2 || !bytes.Equal(data, want) {
		t.Errorf("%v.MarshalBSONValue() = %v, %v, want %v, %v", r, typ, data, 2, want)
	}
}

func TestRational_UnmarshalBSONValue(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			typ  byte
			data []byte
			want Rational
		}{
			{2, []byte{5, 0, 0, 0, '9', '/', '1', '6', 0}, MustNew(9, 16)},
			{2, []byte{5, 0, 0, 0, '-', '1', '.', '5', 0}, MustNew(-3, 2)},
			{10, nil, MustNew(1, 2)},
		}
		for _, tt := range tests {
			got := MustNew(1, 2)
			err := got.UnmarshalBSONValue(tt.typ, tt.data)
			if err != nil {
				t.Errorf("UnmarshalBSONValue(%v, %v) failed: %v", tt.typ, tt.data, err)
				continue
			}
			if got != tt.want {
				t.Errorf("UnmarshalBSONValue(%v, %v) = %v, want %v", tt.typ, tt.data, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			typ  byte
			data []byte
		}{
			"unsupported type": {1, []byte{0, 0, 0, 0, 0, 0, 0, 0}},
			"short data":       {2, []byte{1, 0}},
			"wrong length":     {2, []byte{9, 0, 0, 0, '1', 0}},
			"no terminator":    {2, []byte{2, 0, 0, 0, '1', '1'}},
			"zero denominator": {2, []byte{4, 0, 0, 0, '1', '/', '0', 0}},
			"invalid fraction": {2, []byte{4, 0, 0, 0, 'a', '/', 'b', 0}},
			"zero length":      {2, []byte{0, 0, 0, 0}},
			"negative length":  {2, []byte{255, 255, 255, 255, 0}},
			"missing denom":    {2, []byte{3, 0, 0, 0, '1', '/', 0}},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				got := MustNew(1, 2)
				err := got.UnmarshalBSONValue(tt.typ, tt.data)
				if err == nil {
					t.Errorf("UnmarshalBSONValue(%v, %v) did not fail", tt.typ, tt.data)
				}
				if got != MustNew(1, 2) {
					t.Errorf("UnmarshalBSONValue(%v, %v) changed the receiver to %v", tt.typ, tt.data, got)
				}
			})
		}
	})
}

func TestRational_Scan(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			value any
			want  Rational
		}{
			{"-5/3", MustNew(-5, 3)},
			{[]byte("18/-12"), MustNew(-3, 2)},
			{int64(-9), NewFromInt64(-9)},
			{"0.25", MustNew(1, 4)},
		}
		for _, tt := range tests {
			var got Rational
			err := got.Scan(tt.value)
			if err != nil {
				t.Errorf("Scan(%v) failed: %v", tt.value, err)
				continue
			}
			if got != tt.want {
				t.Errorf("Scan(%v) = %v, want %v", tt.value, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]any{
			"nil":              nil,
			"float":            1.5,
			"bool":             true,
			"zero denominator": "1/0",
			"invalid bytes":    []byte("x/y"),
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				var got Rational
				err := got.Scan(tt)
				if err == nil {
					t.Errorf("Scan(%v) did not fail", tt)
				}
			})
		}
	})
}

func TestRational_Value(t *testing.T) {
	r := MustNew(-18, -32)
	got, err := r.Value()
	if err != nil {
		t.Fatalf("%v.Value() failed: %v", r, err)
	}
	if got != "9/16" {
		t.Errorf("%v.Value() = %v, want %v", r, got, "9/16")
	}
}

func TestNullRational_Scan(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			value any
			want  NullRational
		}{
			{nil, NullRational{}},
			{"-5/3", NullRational{Rational: MustNew(-5, 3), Valid: true}},
			{[]byte("1/2"), NullRational{Rational: MustNew(1, 2), Valid: true}},
			{int64(7), NullRational{Rational: NewFromInt64(7), Valid: true}},
		}
		for _, tt := range tests {
			got := NullRational{Rational: MustNew(1, 3), Valid: true}
			err := got.Scan(tt.value)
			if err != nil {
				t.Errorf("Scan(%v) failed: %v", tt.value, err)
				continue
			}
			if got != tt.want {
				t.Errorf("Scan(%v) = %v, want %v", tt.value, got, tt.want)
			}
		}
	})

	t.Run("[]byte", func(t *testing.T) {
		tests := []string{"1/0", "x"}
		for _, tt := range tests {
			got := NullRational{}
			err := got.Scan([]byte(tt))
			if err == nil {
				t.Errorf("Scan(%q) did not fail", tt)
			}
		}
	})
}

func TestNullRational_Value(t *testing.T) {
	tests := []struct {
		n    NullRational
		want any
	}{
		{NullRational{}, nil},
		{NullRational{Rational: MustNew(2, 3), Valid: true}, "2/3"},
	}
	for _, tt := range tests {
		got, err := tt.n.Value()
		if err != nil {
			t.Errorf("%v.Value() failed: %v", tt.n, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%v.Value() = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestNullRational_JSON(t *testing.T) {
	tests := []struct {
		n    NullRational
		want string
	}{
		{NullRational{}, "null"},
		{NullRational{Rational: MustNew(-1, 4), Valid: true}, `"-1/4"`},
	}
	for _, tt := range tests {
		data, err := json.Marshal(tt.n)
		if err != nil {
			t.Errorf("json.Marshal(%v) failed: %v", tt.n, err)
			continue
		}
		if string(data) != tt.want {
			t.Errorf("json.Marshal(%v) = %s, want %s", tt.n, data, tt.want)
		}
		got := NullRational{Rational: MustNew(5, 7), Valid: true}
		if err := json.Unmarshal(data, &got); err != nil {
			t.Errorf("json.Unmarshal(%s) failed: %v", data, err)
			continue
		}
		if got != tt.n {
			t.Errorf("json.Unmarshal(%s) = %v, want %v", data, got, tt.n)
		}
	}
}

func TestNullRational_BSON(t *testing.T) {
	tests := []NullRational{
		{},
		{Rational: MustNew(-1, 4), Valid: true},
	}
	for _, tt := range tests {
		typ, data, err := tt.MarshalBSONValue()
		if err != nil {
			t.Errorf("%v.MarshalBSONValue() failed: %v", tt, err)
			continue
		}
		got := NullRational{Rational: MustNew(5, 7), Valid: true}
		if err := got.UnmarshalBSONValue(typ, data); err != nil {
			t.Errorf("UnmarshalBSONValue(%v, %v) failed: %v", typ, data, err)
			continue
		}
		if got != tt {
			t.Errorf("UnmarshalBSONValue(%v, %v) = %v, want %v", typ, data, got, tt)
		}
	}
}

func TestRational_FailedDecodeKeepsValue(t *testing.T) {
	want := MustNew(1, 2)
	tests := map[string]func(*Rational) error{
		"UnmarshalJSON 1": func(r *Rational) error { return r.UnmarshalJSON([]byte(`"1/0"`)) },
		"UnmarshalJSON 2": func(r *Rational) error { return r.UnmarshalJSON([]byte(`"1/-9223372036854775808"`)) },
		"UnmarshalJSON 3": func(r *Rational) error { return r.UnmarshalJSON([]byte(`true`)) },
		"UnmarshalText":   func(r *Rational) error { return r.UnmarshalText([]byte("x/2")) },
		"UnmarshalBinary": func(r *Rational) error { return r.UnmarshalBinary([]byte("1/0")) },
		"Scan 1":          func(r *Rational) error { return r.Scan("1/0") },
		"Scan 2":          func(r *Rational) error { return r.Scan(nil) },
		"Scan 3":          func(r *Rational) error { return r.Scan(1.5) },
	}
	for name, decode := range tests {
		t.Run(name, func(t *testing.T) {
			got := want
			if err := decode(&got); err == nil {
				t.Errorf("%v did not fail", name)
			}
			if got != want {
				t.Errorf("%v changed the receiver to %v, want %v", name, got, want)
			}
		})
	}
}

func TestNullRational_FailedDecodeKeepsValue(t *testing.T) {
	tests := map[string]func(*NullRational) error{
		"Scan":          func(n *NullRational) error { return n.Scan("1/0") },
		"UnmarshalJSON": func(n *NullRational) error { return n.UnmarshalJSON([]byte(`"a/b"`)) },
		"UnmarshalBSONValue": func(n *NullRational) error {
			return n.UnmarshalBSONValue(2, []byte{4, 0, 0, 0, '1', '/', '0', 0})
		},
	}
	for name, decode := range tests {
		t.Run(name, func(t *testing.T) {
			for _, want := range []NullRational{{}, {Rational: MustNew(5, 7), Valid: true}} {
				got := want
				if err := decode(&got); err == nil {
					t.Errorf("%v did not fail", name)
				}
				if got != want {
					t.Errorf("%v changed the receiver to %v, want %v", name, got, want)
				}
			}
		})
	}
}
