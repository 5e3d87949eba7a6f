// format/format.go

// Package format is the structured-encoding boundary of the module: it turns
// algorithm parameter records into their canonical byte encoding and back.
// Records are mapped onto the Tink key-format protobuf messages and marshaled
// deterministically, so the same record always yields the same bytes and the
// resulting payloads are consumable by existing Tink keyset generators.
package format

import (
	ctrpb "github.com/google/tink/go/proto/aes_ctr_go_proto"
	ctrhmacpb "github.com/google/tink/go/proto/aes_ctr_hmac_aead_go_proto"
	gcmpb "github.com/google/tink/go/proto/aes_gcm_go_proto"
	commonpb "github.com/google/tink/go/proto/common_go_proto"
	hmacpb "github.com/google/tink/go/proto/hmac_go_proto"
	"google.golang.org/protobuf/proto"

	"github.com/jojodeco2/tink/descriptor"
)

var marshalOpts = proto.MarshalOptions{Deterministic: true}

// MarshalAESCTRHMAC encodes a composite AEAD parameter record. Identical
// records always encode to identical bytes.
func MarshalAESCTRHMAC(p descriptor.AESCTRHMACParams) ([]byte, error) {
	return marshalOpts.Marshal(&ctrhmacpb.AesCtrHmacAeadKeyFormat{
		AesCtrKeyFormat: &ctrpb.AesCtrKeyFormat{
			Params:  &ctrpb.AesCtrParams{IvSize: p.Cipher.IVSizeBytes},
			KeySize: p.Cipher.KeySizeBytes,
		},
		HmacKeyFormat: &hmacpb.HmacKeyFormat{
			Params: &hmacpb.HmacParams{
				Hash:    commonpb.HashType(p.MAC.Hash),
				TagSize: p.MAC.TagSizeBytes,
			},
			KeySize: p.MAC.KeySizeBytes,
		},
	})
}

// UnmarshalAESCTRHMAC is the exact inverse of MarshalAESCTRHMAC.
func UnmarshalAESCTRHMAC(b []byte) (descriptor.AESCTRHMACParams, error) {
	var f ctrhmacpb.AesCtrHmacAeadKeyFormat
	if err := proto.Unmarshal(b, &f); err != nil {
		return descriptor.AESCTRHMACParams{}, err
	}
	return descriptor.AESCTRHMACParams{
		Cipher: descriptor.AESCTRParams{
			KeySizeBytes: f.GetAesCtrKeyFormat().GetKeySize(),
			IVSizeBytes:  f.GetAesCtrKeyFormat().GetParams().GetIvSize(),
		},
		MAC: descriptor.HMACParams{
			KeySizeBytes: f.GetHmacKeyFormat().GetKeySize(),
			TagSizeBytes: f.GetHmacKeyFormat().GetParams().GetTagSize(),
			Hash:         descriptor.HashType(f.GetHmacKeyFormat().GetParams().GetHash()),
		},
	}, nil
}

// MarshalAESGCM encodes a simple AEAD parameter record.
func MarshalAESGCM(p descriptor.AESGCMParams) ([]byte, error) {
	return marshalOpts.Marshal(&gcmpb.AesGcmKeyFormat{KeySize: p.KeySizeBytes})
}

// UnmarshalAESGCM is the exact inverse of MarshalAESGCM.
func UnmarshalAESGCM(b []byte) (descriptor.AESGCMParams, error) {
	var f gcmpb.AesGcmKeyFormat
	if err := proto.Unmarshal(b, &f); err != nil {
		return descriptor.AESGCMParams{}, err
	}
	return descriptor.AESGCMParams{KeySizeBytes: f.GetKeySize()}, nil
}
