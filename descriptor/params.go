// descriptor/params.go
package descriptor

// Parameter records are plain immutable values: every field is supplied at
// construction and nothing here checks sizes for cryptographic soundness.
// Policy enforcement happens downstream, at key-generation time; the named
// templates in the aead package are the pre-approved combinations.

// AESCTRParams holds the block-cipher parameters of the composite AEAD:
// the AES key size and the CTR-mode initialization vector length.
type AESCTRParams struct {
	KeySizeBytes uint32
	IVSizeBytes  uint32
}

// HMACParams holds the MAC parameters of the composite AEAD: the HMAC key
// size, the truncated tag length, and the underlying hash function.
type HMACParams struct {
	KeySizeBytes uint32
	TagSizeBytes uint32
	Hash         HashType
}

// AESCTRHMACParams is the full parameter record of the composite AEAD,
// AES-CTR encryption authenticated by HMAC, under one key type.
type AESCTRHMACParams struct {
	Cipher AESCTRParams
	MAC    HMACParams
}

// AESGCMParams is the parameter record of the simple AEAD. AES-GCM fixes its
// nonce and tag sizes by construction, so only the key size is configurable.
type AESGCMParams struct {
	KeySizeBytes uint32
}
