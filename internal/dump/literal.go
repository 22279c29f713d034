package dump

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Kind is the literal encoding chosen for a column from its declared type.
type Kind int

const (
	KindText Kind = iota
	KindTemporal
	KindNumeric
	KindBinary
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindTemporal:
		return "temporal"
	case KindNumeric:
		return "numeric"
	case KindBinary:
		return "binary"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// NullLiteral is emitted for every NULL value regardless of kind.
const NullLiteral = "NULL"

const temporalLayout = "2006-01-02 15:04:05.000"

// ErrUnsupportedValue is returned for values that have no text form.
var ErrUnsupportedValue = errors.New("unsupported value type")

var kinds = map[string]Kind{
	"bit": KindNumeric, "tinyint": KindNumeric, "smallint": KindNumeric,
	"mediumint": KindNumeric, "int": KindNumeric, "integer": KindNumeric,
	"bigint": KindNumeric, "int2": KindNumeric, "int4": KindNumeric,
	"int8": KindNumeric, "serial": KindNumeric, "bigserial": KindNumeric,
	"smallserial": KindNumeric, "decimal": KindNumeric, "dec": KindNumeric,
	"numeric": KindNumeric, "number": KindNumeric, "money": KindNumeric,
	"smallmoney": KindNumeric, "float": KindNumeric, "float4": KindNumeric,
	"float8": KindNumeric, "real": KindNumeric, "double": KindNumeric,
	"binary_float": KindNumeric, "binary_double": KindNumeric,

	"date": KindTemporal, "time": KindTemporal, "datetime": KindTemporal,
	"datetime2": KindTemporal, "smalldatetime": KindTemporal,
	"datetimeoffset": KindTemporal, "timestamp": KindTemporal,
	"timestamptz": KindTemporal,

	"binary": KindBinary, "varbinary": KindBinary, "image": KindBinary,
	"rowversion": KindBinary, "blob": KindBinary, "tinyblob": KindBinary,
	"mediumblob": KindBinary, "longblob": KindBinary, "bytea": KindBinary,
	"raw": KindBinary,
}

// KindOf resolves the literal kind of a declared catalog type. Only the
// leading type word counts, so "decimal(10,2)", "double precision" and
// "timestamp with time zone" resolve like their base types. Unknown types
// are text.
func KindOf(sqlType string) Kind {
	base := strings.ToLower(strings.TrimSpace(sqlType))
	if i := strings.IndexAny(base, "( "); i >= 0 {
		base = base[:i]
	}
	if k, ok := kinds[base]; ok {
		return k
	}
	return KindText
}

// BinaryStyle renders a byte string as a literal of one SQL dialect.
type BinaryStyle func(b []byte) string

// BinaryStyler is implemented by sessions whose dialect does not read the
// 0x form back as bytes.
type BinaryStyler interface {
	BinaryStyle() BinaryStyle
}

// HexBinary is the T-SQL and MySQL form, 0x01FF.
func HexBinary(b []byte) string {
	return "0x" + upperHex(b)
}

// XQuotedBinary is the SQL standard blob form used by SQLite, X'01FF'.
func XQuotedBinary(b []byte) string {
	return "X'" + upperHex(b) + "'"
}

// EscapedBinary is the PostgreSQL bytea hex form, '\x01FF'. It relies on
// standard_conforming_strings, the server default.
func EscapedBinary(b []byte) string {
	return "'\\x" + upperHex(b) + "'"
}

// HexToRawBinary is the Oracle RAW form, HEXTORAW('01FF').
func HexToRawBinary(b []byte) string {
	return "HEXTORAW('" + upperHex(b) + "')"
}

func upperHex(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}

// FormatLiteral renders one value as SQL literal text, with binary values
// in the 0x form.
func FormatLiteral(value any, kind Kind) (string, error) {
	return formatLiteral(value, kind, HexBinary)
}

// FormatLiteralStyle is FormatLiteral with the binary form chosen by the
// caller. A nil style is HexBinary.
func FormatLiteralStyle(value any, kind Kind, binary BinaryStyle) (string, error) {
	if binary == nil {
		binary = HexBinary
	}
	return formatLiteral(value, kind, binary)
}

func formatLiteral(value any, kind Kind, binary BinaryStyle) (string, error) {
	if value == nil {
		return NullLiteral, nil
	}
	if t, ok := value.(time.Time); ok {
		return quote(t.Format(temporalLayout)), nil
	}
	switch kind {
	case KindNumeric:
		if s, ok := numericText(value); ok {
			return s, nil
		}
	case KindBinary:
		if b, ok := value.([]byte); ok {
			return binary(b), nil
		}
	}
	s, err := canonicalText(value)
	if err != nil {
		return "", err
	}
	return quote(s), nil
}

// quote doubles embedded single quotes and wraps s in single quotes.
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// numericText returns the unquoted form of a numeric value. Text that does
// not read as a plain number (NaN, locale separators) is left to quoting.
func numericText(v any) (string, bool) {
	if b, ok := v.(bool); ok {
		if b {
			return "1", true
		}
		return "0", true
	}
	s, err := canonicalText(v)
	if err != nil || !isNumber(s) {
		return "", false
	}
	return s, true
}

func canonicalText(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case []byte:
		return string(x), nil
	case int:
		return strconv.Itoa(x), nil
	case int8:
		return strconv.FormatInt(int64(x), 10), nil
	case int16:
		return strconv.FormatInt(int64(x), 10), nil
	case int32:
		return strconv.FormatInt(int64(x), 10), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32), nil
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64), nil
	case bool:
		return strconv.FormatBool(x), nil
	case fmt.Stringer:
		return x.String(), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
}

// isNumber accepts [-+]digits[.digits][e[-+]digits] with at least one digit
// before the exponent.
func isNumber(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}
	digits := 0
	for ; i < len(s) && isDigit(s[i]); i++ {
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for ; i < len(s) && isDigit(s[i]); i++ {
			digits++
		}
	}
	if digits == 0 {
		return false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '-' || s[i] == '+') {
			i++
		}
		exp := 0
		for ; i < len(s) && isDigit(s[i]); i++ {
			exp++
		}
		if exp == 0 {
			return false
		}
	}
	return i == len(s)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
