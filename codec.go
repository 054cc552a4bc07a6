package decimal

import (
	"database/sql/driver"
	"fmt"
)

// Scan implements the sql.Scanner interface for database
// deserialization, accepting the same textual and numeric
// representations a SQL driver hands back for a DECIMAL/NUMERIC
// column.
func (d *Decimal) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Decimal{}
		return nil
	case string:
		p, err := Parse(v)
		if err != nil {
			return err
		}
		*d = p
		return nil
	case []byte:
		p, err := Parse(string(v))
		if err != nil {
			return err
		}
		*d = p
		return nil
	case int64:
		*d = New(v)
		return nil
	default:
		return fmt.Errorf("decimal: unsupported Scan source %T", src)
	}
}

// Value implements the driver.Valuer interface for database
// serialization, handing the driver the canonical text form.
func (d Decimal) Value() (driver.Value, error) {
	return d.String(), nil
}

// MarshalText implements the encoding.TextMarshaler interface.
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (d *Decimal) UnmarshalText(text []byte) error {
	p, err := Parse(string(text))
	if err != nil {
		return fmt.Errorf("decimal: cannot unmarshal %q: %w", text, err)
	}
	*d = p
	return nil
}

// MarshalBinary implements the encoding.BinaryMarshaler interface,
// writing the 16-byte Microsoft DECIMAL-compatible layout, low word
// first.
func (d Decimal) MarshalBinary() ([]byte, error) {
	low, mid, high, flags := d.Bits()
	buf := make([]byte, 16)
	putUint32LE(buf[0:4], low)
	putUint32LE(buf[4:8], mid)
	putUint32LE(buf[8:12], high)
	putUint32LE(buf[12:16], flags)
	return buf, nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler
// interface, reading back the layout written by MarshalBinary.
func (d *Decimal) UnmarshalBinary(data []byte) error {
	if len(data) != 16 {
		return fmt.Errorf("decimal: invalid binary length %d, want 16", len(data))
	}
	low := getUint32LE(data[0:4])
	mid := getUint32LE(data[4:8])
	high := getUint32LE(data[8:12])
	flags := getUint32LE(data[12:16])
	p, err := NewFromBits(low, mid, high, flags)
	if err != nil {
		return err
	}
	*d = p
	return nil
}

func putUint32LE(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}

func getUint32LE(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

// Format implements fmt.Formatter, supporting %v and %s (the decimal
// text form) and %q (the quoted text form).
func (d Decimal) Format(state fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		fmt.Fprint(state, d.String())
	case 'q':
		fmt.Fprintf(state, "%q", d.String())
	default:
		fmt.Fprintf(state, "%%!%c(decimal.Decimal=%s)", verb, d.String())
	}
}
