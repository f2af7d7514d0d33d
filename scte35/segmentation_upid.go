package scte35

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// SegmentationUPIDType is the closed set of 17 named upid_type wire codes.
type SegmentationUPIDType uint8

const (
	SegmentationUPIDTypeNotUsed              SegmentationUPIDType = 0x00
	SegmentationUPIDTypeUserDefined          SegmentationUPIDType = 0x01
	SegmentationUPIDTypeISCI                 SegmentationUPIDType = 0x02
	SegmentationUPIDTypeAdID                 SegmentationUPIDType = 0x03
	SegmentationUPIDTypeUMID                 SegmentationUPIDType = 0x04
	SegmentationUPIDTypeDeprecatedISAN       SegmentationUPIDType = 0x05
	SegmentationUPIDTypeISAN                 SegmentationUPIDType = 0x06
	SegmentationUPIDTypeTID                  SegmentationUPIDType = 0x07
	SegmentationUPIDTypeTI                   SegmentationUPIDType = 0x08
	SegmentationUPIDTypeADI                  SegmentationUPIDType = 0x09
	SegmentationUPIDTypeEIDR                 SegmentationUPIDType = 0x0A
	SegmentationUPIDTypeATSCContentIdentifier SegmentationUPIDType = 0x0B
	SegmentationUPIDTypeMPU                  SegmentationUPIDType = 0x0C
	SegmentationUPIDTypeMID                  SegmentationUPIDType = 0x0D
	SegmentationUPIDTypeADSInformation        SegmentationUPIDType = 0x0E
	SegmentationUPIDTypeURI                  SegmentationUPIDType = 0x0F
	SegmentationUPIDTypeUUID                 SegmentationUPIDType = 0x10
)

var segmentationUPIDTypeNames = map[SegmentationUPIDType]string{
	SegmentationUPIDTypeNotUsed:               "NotUsed",
	SegmentationUPIDTypeUserDefined:           "UserDefined",
	SegmentationUPIDTypeISCI:                  "ISCI",
	SegmentationUPIDTypeAdID:                  "AdID",
	SegmentationUPIDTypeUMID:                  "UMID",
	SegmentationUPIDTypeDeprecatedISAN:        "DeprecatedISAN",
	SegmentationUPIDTypeISAN:                  "ISAN",
	SegmentationUPIDTypeTID:                   "TID",
	SegmentationUPIDTypeTI:                    "TI",
	SegmentationUPIDTypeADI:                   "ADI",
	SegmentationUPIDTypeEIDR:                  "EIDR",
	SegmentationUPIDTypeATSCContentIdentifier: "ATSCContentIdentifier",
	SegmentationUPIDTypeMPU:                   "MPU",
	SegmentationUPIDTypeMID:                   "MID",
	SegmentationUPIDTypeADSInformation:        "ADSInformation",
	SegmentationUPIDTypeURI:                   "URI",
	SegmentationUPIDTypeUUID:                  "UUID",
}

func (t SegmentationUPIDType) String() string {
	if name, ok := segmentationUPIDTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("SegmentationUPIDType(0x%02x)", uint8(t))
}

func decodeSegmentationUPIDType(raw uint32) (SegmentationUPIDType, error) {
	t := SegmentationUPIDType(raw)
	if _, ok := segmentationUPIDTypeNames[t]; !ok {
		return 0, &UnrecognisedSegmentationUPIDTypeError{Raw: raw}
	}
	return t, nil
}

func upidLengthError(declared, expected int, upidType SegmentationUPIDType) error {
	return &UnexpectedSegmentationUPIDLengthError{Declared: declared, Expected: expected, UPIDType: upidType}
}

// SegmentationUPID is the polymorphic upid_type-tagged payload carried by a
// SegmentationScheduledEvent. Exactly one of the concrete types below is
// returned by decodeSegmentationUPID.
type SegmentationUPID interface {
	UPIDType() SegmentationUPIDType
}

type NotUsedUPID struct{}

func (NotUsedUPID) UPIDType() SegmentationUPIDType { return SegmentationUPIDTypeNotUsed }

type UserDefinedUPID struct{ Value string }

func (UserDefinedUPID) UPIDType() SegmentationUPIDType { return SegmentationUPIDTypeUserDefined }

type ISCIUPID struct{ Value string }

func (ISCIUPID) UPIDType() SegmentationUPIDType { return SegmentationUPIDTypeISCI }

type AdIDUPID struct{ Value string }

func (AdIDUPID) UPIDType() SegmentationUPIDType { return SegmentationUPIDTypeAdID }

// UMIDUPID is 8 u32 groups formatted as uppercase 8-hex-digit strings joined
// by ".".
type UMIDUPID struct{ Value string }

func (UMIDUPID) UPIDType() SegmentationUPIDType { return SegmentationUPIDTypeUMID }

// DeprecatedISANUPID is a hyphen-separated checked hex string, ISAN v1
// layout: 4 data groups and a single check character at index 4.
type DeprecatedISANUPID struct{ Value string }

func (DeprecatedISANUPID) UPIDType() SegmentationUPIDType { return SegmentationUPIDTypeDeprecatedISAN }

// ISANUPID is a hyphen-separated checked hex string, ISAN v2 layout: 6 data
// groups and check characters at indices 4 and 7.
type ISANUPID struct{ Value string }

func (ISANUPID) UPIDType() SegmentationUPIDType { return SegmentationUPIDTypeISAN }

type TIDUPID struct{ Value string }

func (TIDUPID) UPIDType() SegmentationUPIDType { return SegmentationUPIDTypeTID }

// TIUPID is "0x" followed by the uppercase hex encoding of the 8 raw bytes.
type TIUPID struct{ Value string }

func (TIUPID) UPIDType() SegmentationUPIDType { return SegmentationUPIDTypeTI }

type ADIUPID struct{ Value string }

func (ADIUPID) UPIDType() SegmentationUPIDType { return SegmentationUPIDTypeADI }

// EIDRUPID is "10." + decimal(registrant) + "/" + hyphen-separated checked
// hex (5 data groups, check character at index 5). This reuses the ISAN
// textual form for the DOI suffix rather than a free-form EIDR suffix; see
// the design notes on this anomaly.
type EIDRUPID struct{ Value string }

func (EIDRUPID) UPIDType() SegmentationUPIDType { return SegmentationUPIDTypeEIDR }

type ATSCContentIdentifierUPID struct{ Value ATSCContentIdentifier }

func (ATSCContentIdentifierUPID) UPIDType() SegmentationUPIDType {
	return SegmentationUPIDTypeATSCContentIdentifier
}

// MPUUPID is a managed-private UPID: a 4-byte ASCII format_specifier
// followed by upid_length-4 bytes of opaque private_data.
type MPUUPID struct {
	FormatSpecifier string
	PrivateData     []byte
}

func (MPUUPID) UPIDType() SegmentationUPIDType { return SegmentationUPIDTypeMPU }

// MIDUPID is a nested list of UPIDs, parsed recursively until upid_length
// bytes have been consumed.
type MIDUPID struct{ Value []SegmentationUPID }

func (MIDUPID) UPIDType() SegmentationUPIDType { return SegmentationUPIDTypeMID }

type ADSInformationUPID struct{ Value string }

func (ADSInformationUPID) UPIDType() SegmentationUPIDType { return SegmentationUPIDTypeADSInformation }

type URIUPID struct{ Value string }

func (URIUPID) UPIDType() SegmentationUPIDType { return SegmentationUPIDTypeURI }

type UUIDUPID struct{ Value string }

func (UUIDUPID) UPIDType() SegmentationUPIDType { return SegmentationUPIDTypeUUID }

func decodeSegmentationUPID(br *bitReader) (SegmentationUPID, error) {
	if err := br.validate(16, "segmentation_upid.upid_type+upid_length"); err != nil {
		return nil, err
	}
	upidType, err := decodeSegmentationUPIDType(uint32(br.byteVal()))
	if err != nil {
		return nil, err
	}
	upidLength := int(br.byteVal())
	if err := br.validate(uint(upidLength)*8, "segmentation_upid body"); err != nil {
		return nil, err
	}
	return decodeSegmentationUPIDBody(br, upidType, upidLength)
}

func decodeSegmentationUPIDBody(br *bitReader, upidType SegmentationUPIDType, upidLength int) (SegmentationUPID, error) {
	switch upidType {
	case SegmentationUPIDTypeNotUsed:
		if upidLength != 0 {
			return nil, upidLengthError(upidLength, 0, upidType)
		}
		return NotUsedUPID{}, nil

	case SegmentationUPIDTypeUserDefined:
		s, err := br.str(upidLength, "SegmentationUPIDType::UserDefined")
		if err != nil {
			return nil, err
		}
		return UserDefinedUPID{Value: s}, nil

	case SegmentationUPIDTypeISCI:
		if upidLength != 8 {
			return nil, upidLengthError(upidLength, 8, upidType)
		}
		s, err := br.str(upidLength, "SegmentationUPIDType::ISCI")
		if err != nil {
			return nil, err
		}
		return ISCIUPID{Value: s}, nil

	case SegmentationUPIDTypeAdID:
		if upidLength != 12 {
			return nil, upidLengthError(upidLength, 12, upidType)
		}
		s, err := br.str(upidLength, "SegmentationUPIDType::AdID")
		if err != nil {
			return nil, err
		}
		return AdIDUPID{Value: s}, nil

	case SegmentationUPIDTypeUMID:
		if upidLength != 32 {
			return nil, upidLengthError(upidLength, 32, upidType)
		}
		groups := make([]string, 8)
		for i := range groups {
			groups[i] = fmt.Sprintf("%08X", br.u32(32))
		}
		return UMIDUPID{Value: strings.Join(groups, ".")}, nil

	case SegmentationUPIDTypeDeprecatedISAN:
		if upidLength != 8 {
			return nil, upidLengthError(upidLength, 8, upidType)
		}
		return DeprecatedISANUPID{Value: readHyphenSeparatedCheckedHex(br, hyphenHexDeprecatedISAN)}, nil

	case SegmentationUPIDTypeISAN:
		if upidLength != 12 {
			return nil, upidLengthError(upidLength, 12, upidType)
		}
		return ISANUPID{Value: readHyphenSeparatedCheckedHex(br, hyphenHexVersionedISAN)}, nil

	case SegmentationUPIDTypeTID:
		if upidLength != 12 {
			return nil, upidLengthError(upidLength, 12, upidType)
		}
		s, err := br.str(upidLength, "SegmentationUPIDType::TID")
		if err != nil {
			return nil, err
		}
		return TIDUPID{Value: s}, nil

	case SegmentationUPIDTypeTI:
		if upidLength != 8 {
			return nil, upidLengthError(upidLength, 8, upidType)
		}
		return TIUPID{Value: "0x" + strings.ToUpper(hex.EncodeToString(br.bytes(8)))}, nil

	case SegmentationUPIDTypeADI:
		s, err := br.str(upidLength, "SegmentationUPIDType::ADI")
		if err != nil {
			return nil, err
		}
		return ADIUPID{Value: s}, nil

	case SegmentationUPIDTypeEIDR:
		if upidLength != 12 {
			return nil, upidLengthError(upidLength, 12, upidType)
		}
		registrant := br.u16(16)
		suffix := readHyphenSeparatedCheckedHex(br, hyphenHexEidr)
		return EIDRUPID{Value: fmt.Sprintf("10.%d/%s", registrant, suffix)}, nil

	case SegmentationUPIDTypeATSCContentIdentifier:
		if upidLength < 4 {
			return nil, &InvalidATSCContentIdentifierInUPIDError{UPIDLength: upidLength}
		}
		atsc, err := decodeATSCContentIdentifier(br, upidLength)
		if err != nil {
			return nil, err
		}
		return ATSCContentIdentifierUPID{Value: atsc}, nil

	case SegmentationUPIDTypeMPU:
		if upidLength < 4 {
			return nil, &InvalidMPUInSegmentationUPIDError{UPIDLength: upidLength}
		}
		formatSpecifier, err := br.str(4, "SegmentationUPIDType::MPU format_specifier")
		if err != nil {
			return nil, err
		}
		return MPUUPID{FormatSpecifier: formatSpecifier, PrivateData: br.bytes(upidLength - 4)}, nil

	case SegmentationUPIDTypeMID:
		stopAt := br.bitsRemaining() - uint(upidLength)*8
		var mid []SegmentationUPID
		for br.bitsRemaining() > stopAt {
			nested, err := decodeSegmentationUPID(br)
			if err != nil {
				return nil, err
			}
			mid = append(mid, nested)
		}
		return MIDUPID{Value: mid}, nil

	case SegmentationUPIDTypeADSInformation:
		s, err := br.str(upidLength, "SegmentationUPIDType::ADSInformation")
		if err != nil {
			return nil, err
		}
		return ADSInformationUPID{Value: s}, nil

	case SegmentationUPIDTypeURI:
		s, err := br.str(upidLength, "SegmentationUPIDType::URI")
		if err != nil {
			return nil, err
		}
		return URIUPID{Value: s}, nil

	case SegmentationUPIDTypeUUID:
		if upidLength != 16 {
			return nil, upidLengthError(upidLength, 16, upidType)
		}
		s, err := br.str(16, "SegmentationUPIDType::UUID")
		if err != nil {
			return nil, err
		}
		return UUIDUPID{Value: s}, nil

	default:
		return nil, &UnrecognisedSegmentationUPIDTypeError{Raw: uint32(upidType)}
	}
}

// hyphenSeparatedCheckedHexVersion selects the section count and check
// character positions for the ISAN-family textual encoding shared by
// DeprecatedISAN, ISAN, and the EIDR suffix.
type hyphenSeparatedCheckedHexVersion int

const (
	hyphenHexDeprecatedISAN hyphenSeparatedCheckedHexVersion = iota
	hyphenHexVersionedISAN
	hyphenHexEidr
)

func (v hyphenSeparatedCheckedHexVersion) lastIndex() int {
	switch v {
	case hyphenHexDeprecatedISAN:
		return 4
	case hyphenHexVersionedISAN:
		return 7
	case hyphenHexEidr:
		return 5
	default:
		return 0
	}
}

func (v hyphenSeparatedCheckedHexVersion) isCheckIndex(i int) bool {
	switch v {
	case hyphenHexDeprecatedISAN:
		return i == 4
	case hyphenHexVersionedISAN:
		return i == 4 || i == 7
	case hyphenHexEidr:
		return i == 5
	default:
		return false
	}
}

// readHyphenSeparatedCheckedHex reads the fixed section count for version,
// reading a u16(16) for each data section and computing a single check
// character for each check section, then joins them with "-".
func readHyphenSeparatedCheckedHex(br *bitReader, version hyphenSeparatedCheckedHexVersion) string {
	sections := make([]string, 0, version.lastIndex()+1)
	for i := 0; i <= version.lastIndex(); i++ {
		if version.isCheckIndex(i) {
			sections = append(sections, string(isanCheckChar(sections)))
		} else {
			sections = append(sections, fmt.Sprintf("%04X", br.u16(16)))
		}
	}
	return strings.Join(sections, "-")
}

const isanCheckCharAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// isanCheckChar computes the ISAN v2 check-digit character over the hex
// nibbles of the already-emitted data sections, skipping any
// previously-computed single-character check sections.
func isanCheckChar(sections []string) byte {
	adjustedProduct := 36
	for _, section := range sections {
		if len(section) == 1 {
			continue
		}
		for _, c := range section {
			d := hexDigitValue(byte(c))
			s := adjustedProduct + d
			if s > 36 {
				s -= 36
			}
			p := s * 2
			if p >= 37 {
				p -= 37
			}
			adjustedProduct = p
		}
	}
	if adjustedProduct == 1 {
		return '0'
	}
	return isanCheckCharAlphabet[37-adjustedProduct]
}

func hexDigitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	default:
		return 0
	}
}
