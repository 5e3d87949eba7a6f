// descriptor/hash.go
package descriptor

// HashType identifies the hash function backing an HMAC. The numeric values
// match the Tink HashType enum; the out-of-order SHA values are historical
// and must not be renumbered.
type HashType uint32

const (
	UnknownHash HashType = 0
	SHA1        HashType = 1
	SHA384      HashType = 2
	SHA256      HashType = 3
	SHA512      HashType = 4
	SHA224      HashType = 5
)

func (h HashType) String() string {
	switch h {
	case SHA1:
		return "SHA1"
	case SHA384:
		return "SHA384"
	case SHA256:
		return "SHA256"
	case SHA512:
		return "SHA512"
	case SHA224:
		return "SHA224"
	default:
		return "UNKNOWN"
	}
}
