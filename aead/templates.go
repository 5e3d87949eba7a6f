// aead/templates.go

// Package aead produces key-configuration descriptors for two AEAD families:
// AES-CTR encryption authenticated by HMAC (composite) and AES-GCM (simple).
// Most callers should use the named templates; the New* builders accept
// arbitrary sizes and exist for advanced configurations, with parameter
// soundness left to the key-generation subsystem that consumes the result.
package aead

import (
	"fmt"

	"github.com/jojodeco2/tink/descriptor"
	"github.com/jojodeco2/tink/format"
)

const (
	// AESCTRHMACAEADTypeURL identifies the composite AES-CTR + HMAC key type
	// in the algorithm registry.
	AESCTRHMACAEADTypeURL = "type.googleapis.com/google.crypto.tink.AesCtrHmacAeadKey"
	// AESGCMTypeURL identifies the AES-GCM key type in the algorithm registry.
	AESGCMTypeURL = "type.googleapis.com/google.crypto.tink.AesGcmKey"
)

// NewAESCTRHMACAEADDescriptor builds a composite AEAD descriptor from the
// given sizes, all in bytes. The hash function is fixed to SHA-256 and the
// output prefix to TINK; neither is configurable through this builder. Sizes
// are encoded as given, without range checks.
func NewAESCTRHMACAEADDescriptor(aesKeySize, ivSize, hmacKeySize, tagSize uint32) (*descriptor.KeyDescriptor, error) {
	value, err := format.MarshalAESCTRHMAC(descriptor.AESCTRHMACParams{
		Cipher: descriptor.AESCTRParams{
			KeySizeBytes: aesKeySize,
			IVSizeBytes:  ivSize,
		},
		MAC: descriptor.HMACParams{
			KeySizeBytes: hmacKeySize,
			TagSizeBytes: tagSize,
			Hash:         descriptor.SHA256,
		},
	})
	if err != nil {
		return nil, err
	}
	return &descriptor.KeyDescriptor{
		TypeURL:          AESCTRHMACAEADTypeURL,
		OutputPrefixType: descriptor.TinkPrefix,
		Value:            value,
	}, nil
}

// NewAESGCMDescriptor builds a simple AEAD descriptor for an AES-GCM key of
// keySize bytes with the given output prefix type. The key size is encoded as
// given, without range checks.
func NewAESGCMDescriptor(keySize uint32, prefix descriptor.OutputPrefixType) (*descriptor.KeyDescriptor, error) {
	value, err := format.MarshalAESGCM(descriptor.AESGCMParams{KeySizeBytes: keySize})
	if err != nil {
		return nil, err
	}
	return &descriptor.KeyDescriptor{
		TypeURL:          AESGCMTypeURL,
		OutputPrefixType: prefix,
		Value:            value,
	}, nil
}

// AES128CTRHMACSHA256KeyTemplate is a descriptor for an AES-CTR-HMAC-AEAD key
// with the following parameters:
//   - AES key size: 16 bytes
//   - AES CTR IV size: 16 bytes
//   - HMAC key size: 32 bytes
//   - HMAC tag size: 16 bytes
//   - HMAC hash function: SHA256
func AES128CTRHMACSHA256KeyTemplate() *descriptor.KeyDescriptor {
	return mustDescriptor(NewAESCTRHMACAEADDescriptor(16, 16, 32, 16))
}

// AES256CTRHMACSHA256KeyTemplate is a descriptor for an AES-CTR-HMAC-AEAD key
// with the following parameters:
//   - AES key size: 32 bytes
//   - AES CTR IV size: 16 bytes
//   - HMAC key size: 32 bytes
//   - HMAC tag size: 32 bytes
//   - HMAC hash function: SHA256
func AES256CTRHMACSHA256KeyTemplate() *descriptor.KeyDescriptor {
	return mustDescriptor(NewAESCTRHMACAEADDescriptor(32, 16, 32, 32))
}

// AES128GCMKeyTemplate is a descriptor for an AES-GCM key with the following
// parameters:
//   - Key size: 16 bytes
//   - Output prefix type: TINK
func AES128GCMKeyTemplate() *descriptor.KeyDescriptor {
	return mustDescriptor(NewAESGCMDescriptor(16, descriptor.TinkPrefix))
}

// AES256GCMKeyTemplate is a descriptor for an AES-GCM key with the following
// parameters:
//   - Key size: 32 bytes
//   - Output prefix type: TINK
func AES256GCMKeyTemplate() *descriptor.KeyDescriptor {
	return mustDescriptor(NewAESGCMDescriptor(32, descriptor.TinkPrefix))
}

// AES256GCMNoPrefixKeyTemplate is a descriptor for an AES-GCM key with the
// following parameters:
//   - Key size: 32 bytes
//   - Output prefix type: RAW
func AES256GCMNoPrefixKeyTemplate() *descriptor.KeyDescriptor {
	return mustDescriptor(NewAESGCMDescriptor(32, descriptor.RawPrefix))
}

// mustDescriptor backs the named templates, whose fixed literals cannot fail
// to encode.
func mustDescriptor(d *descriptor.KeyDescriptor, err error) *descriptor.KeyDescriptor {
	if err != nil {
		panic(fmt.Sprintf("aead: failed to encode fixed template parameters: %v", err))
	}
	return d
}
