// descriptor/prefix.go
package descriptor

import "fmt"

// OutputPrefixType controls whether ciphertexts produced under a key carry a
// fixed-length versioned marker identifying that key. The numeric values match
// the Tink OutputPrefixType enum so encoded descriptors stay interoperable.
type OutputPrefixType uint32

const (
	// UnknownPrefix is the zero value and never produced by this module.
	UnknownPrefix OutputPrefixType = 0
	// TinkPrefix prepends a 5-byte versioned key marker to every ciphertext.
	TinkPrefix OutputPrefixType = 1
	// LegacyPrefix is a compatibility variant of TinkPrefix.
	LegacyPrefix OutputPrefixType = 2
	// RawPrefix produces bare ciphertexts with no marker.
	RawPrefix OutputPrefixType = 3
	// CrunchyPrefix is a compatibility variant of TinkPrefix.
	CrunchyPrefix OutputPrefixType = 4
)

func (t OutputPrefixType) String() string {
	switch t {
	case TinkPrefix:
		return "TINK"
	case LegacyPrefix:
		return "LEGACY"
	case RawPrefix:
		return "RAW"
	case CrunchyPrefix:
		return "CRUNCHY"
	default:
		return "UNKNOWN"
	}
}

// ParseOutputPrefixType maps a canonical prefix name to its enum value.
func ParseOutputPrefixType(s string) (OutputPrefixType, error) {
	switch s {
	case "TINK":
		return TinkPrefix, nil
	case "LEGACY":
		return LegacyPrefix, nil
	case "RAW":
		return RawPrefix, nil
	case "CRUNCHY":
		return CrunchyPrefix, nil
	default:
		return UnknownPrefix, fmt.Errorf("unknown output prefix type: %q", s)
	}
}
