// descriptor/descriptor.go

// Package descriptor defines the key-configuration descriptor produced by this
// module and the algorithm parameter records it encodes. A descriptor carries
// no secret material; it only names an algorithm and the shape of the key that
// a key-generation subsystem should construct from it.
package descriptor

import "bytes"

// KeyDescriptor is a self-describing key configuration: which algorithm to
// instantiate, how its ciphertexts are prefixed, and the encoded parameter
// record for that algorithm. It is fully populated at construction and never
// mutated afterwards.
type KeyDescriptor struct {
	// TypeURL is the globally unique identifier of the target key type,
	// assigned by the algorithm registry. It is treated as opaque here.
	TypeURL string
	// OutputPrefixType selects the ciphertext prefix scheme keys generated
	// from this descriptor will use.
	OutputPrefixType OutputPrefixType
	// Value is the canonical encoding of one algorithm parameter record.
	// It is an opaque blob once produced; decode it with the format package
	// schema matching TypeURL.
	Value []byte
}

// Equal reports whether two descriptors describe the same key configuration.
// Descriptors have no identity beyond value equality.
func (d *KeyDescriptor) Equal(other *KeyDescriptor) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.TypeURL == other.TypeURL &&
		d.OutputPrefixType == other.OutputPrefixType &&
		bytes.Equal(d.Value, other.Value)
}
