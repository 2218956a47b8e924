package trigo

import (
	"fmt"
	"io"
	"strconv"
	"unsafe"
)

func (degrees) suffix() string { return "°" }
func (radians) suffix() string { return "rd" }

// String renders the angle as its payload followed by the unit suffix, "rd"
// for radians and "°" for degrees. The payload uses the shortest decimal
// representation that round-trips at the angle's precision.
func (a Angle[T, U]) String() string {
	b, _ := a.AppendText(nil)
	return string(b)
}

// AppendText implements encoding.TextAppender. The output is the same form
// String produces.
func (a Angle[T, U]) AppendText(b []byte) ([]byte, error) {
	var u U
	bits := int(unsafe.Sizeof(a.val)) * 8
	b = strconv.AppendFloat(b, float64(a.val), 'g', -1, bits)
	return append(b, u.suffix()...), nil
}

// MarshalText implements encoding.TextMarshaler.
func (a Angle[T, U]) MarshalText() ([]byte, error) {
	return a.AppendText(nil)
}

// Format implements fmt.Formatter. The verb and any flags apply to the
// numeric payload, the unit suffix is appended afterwards, so "%.2f" of a
// 90 degree value prints "90.00°".
func (a Angle[T, U]) Format(f fmt.State, verb rune) {
	if verb == 's' {
		verb = 'v'
	}
	var u U
	fmt.Fprintf(f, fmt.FormatString(f, verb), a.val)
	io.WriteString(f, u.suffix())
}
