package scte35

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// newTable creates a new table with the given parameters.
func newTable(prefix, indent string) *table {
	return &table{prefix: prefix, indent: indent, b: &strings.Builder{}}
}

// table simplifies construction of splice_info_section tables.
type table struct {
	prefix string
	indent string
	b      *strings.Builder
}

func (t *table) row(indents int, key string, value any) {
	_, _ = t.b.WriteString(t.prefix)
	for i := 0; i < indents; i++ {
		_, _ = t.b.WriteString(t.indent)
	}
	_, _ = t.b.WriteString(key)
	if value != nil {
		_, _ = t.b.WriteString(": ")
		_, _ = t.b.WriteString(valueString(value))
	}
	_, _ = t.b.WriteRune('\n')
}

func (t *table) String() string { return t.b.String() }

// valueString converts the given value to a string.
func valueString(value any) string {
	switch vt := value.(type) {
	case string:
		return vt
	case int:
		return strconv.FormatInt(int64(vt), 10)
	case uint8:
		return strconv.FormatUint(uint64(vt), 10)
	case uint16:
		return strconv.FormatUint(uint64(vt), 10)
	case uint32:
		return strconv.FormatUint(uint64(vt), 10)
	case uint64:
		return strconv.FormatUint(vt, 10)
	case *uint64:
		if vt == nil {
			return ""
		}
		return strconv.FormatUint(*vt, 10)
	case bool:
		if vt {
			return "true"
		}
		return "false"
	case []byte:
		return fmt.Sprintf("%#x (%s)", vt, rawBytesString(vt))
	default:
		return fmt.Sprintf("%v", vt)
	}
}

// rawBytesString renders a []byte row value as Latin-1 text. ISO8859_1 is
// a total mapping over every byte value, so this never fails the way UTF-8
// decoding of arbitrary bytes would.
func rawBytesString(b []byte) string {
	s, _ := charmap.ISO8859_1.NewDecoder().String(string(b))
	return s
}

// Table returns a human-readable rendering of the section, one field per
// line, following ANSI/SCTE 35 Table 5's field ordering.
func (sis *SpliceInfoSection) Table(prefix, indent string) string {
	t := newTable(prefix, indent)
	t.row(0, "splice_info_section() {", nil)
	t.row(1, "table_id", fmt.Sprintf("%#02x", sis.TableID))
	t.row(1, "sap_type", fmt.Sprintf("%d (%s)", sis.SAPType.Value(), sis.SAPType))
	t.row(0, "}", nil)
	t.row(0, "protocol_version", sis.ProtocolVersion)
	t.row(0, "pts_adjustment", sis.PTSAdjustment)
	t.row(0, "cw_index", sis.CWIndex)
	t.row(0, "tier", sis.Tier)
	if sis.SpliceCommand != nil {
		t.row(0, "splice_command_type", fmt.Sprintf("%#02x (%s)", uint8(sis.SpliceCommand.CommandType()), sis.SpliceCommand.CommandType()))
	}
	for _, sd := range sis.SpliceDescriptors {
		t.row(0, "splice_descriptor", sd.DescriptorTag().String())
	}
	t.row(0, "crc_32", fmt.Sprintf("%#08x", sis.CRC32))
	for _, nf := range sis.NonFatalErrors {
		t.row(0, "non_fatal_error", nf.Error())
	}
	return t.String()
}

func (sis *SpliceInfoSection) String() string {
	return sis.Table("", "  ")
}
