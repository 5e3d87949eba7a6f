// descriptor/descriptor_test.go
package descriptor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jojodeco2/tink/descriptor"
)

func TestKeyDescriptorEqual(t *testing.T) {
	base := &descriptor.KeyDescriptor{
		TypeURL:          "type.googleapis.com/google.crypto.tink.AesGcmKey",
		OutputPrefixType: descriptor.TinkPrefix,
		Value:            []byte{0x10, 0x20},
	}

	same := &descriptor.KeyDescriptor{
		TypeURL:          base.TypeURL,
		OutputPrefixType: base.OutputPrefixType,
		Value:            []byte{0x10, 0x20},
	}
	assert.True(t, base.Equal(same))
	assert.True(t, same.Equal(base))

	otherURL := &descriptor.KeyDescriptor{
		TypeURL:          "type.googleapis.com/google.crypto.tink.AesCtrHmacAeadKey",
		OutputPrefixType: base.OutputPrefixType,
		Value:            []byte{0x10, 0x20},
	}
	assert.False(t, base.Equal(otherURL))

	otherPrefix := &descriptor.KeyDescriptor{
		TypeURL:          base.TypeURL,
		OutputPrefixType: descriptor.RawPrefix,
		Value:            []byte{0x10, 0x20},
	}
	assert.False(t, base.Equal(otherPrefix))

	otherValue := &descriptor.KeyDescriptor{
		TypeURL:          base.TypeURL,
		OutputPrefixType: base.OutputPrefixType,
		Value:            []byte{0x10, 0x21},
	}
	assert.False(t, base.Equal(otherValue))
}

func TestKeyDescriptorEqualNil(t *testing.T) {
	var nilDesc *descriptor.KeyDescriptor
	assert.True(t, nilDesc.Equal(nil))
	assert.False(t, nilDesc.Equal(&descriptor.KeyDescriptor{}))
	assert.False(t, (&descriptor.KeyDescriptor{}).Equal(nil))
}

func TestOutputPrefixTypeStringParseRoundTrip(t *testing.T) {
	prefixes := []descriptor.OutputPrefixType{
		descriptor.TinkPrefix,
		descriptor.LegacyPrefix,
		descriptor.RawPrefix,
		descriptor.CrunchyPrefix,
	}
	for _, p := range prefixes {
		parsed, err := descriptor.ParseOutputPrefixType(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, parsed)
	}
}

func TestParseOutputPrefixTypeUnknown(t *testing.T) {
	_, err := descriptor.ParseOutputPrefixType("PLAIN")
	assert.Error(t, err)

	_, err = descriptor.ParseOutputPrefixType("")
	assert.Error(t, err)
}

func TestHashTypeString(t *testing.T) {
	assert.Equal(t, "SHA256", descriptor.SHA256.String())
	assert.Equal(t, "SHA512", descriptor.SHA512.String())
	assert.Equal(t, "UNKNOWN", descriptor.UnknownHash.String())
	assert.Equal(t, "UNKNOWN", descriptor.HashType(99).String())
}
