package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
)

// MACSize is the size of the external authentication tag (HMAC-SHA256).
const MACSize = sha256.Size

// ComputeMAC returns the HMAC-SHA256 tag of data under key. The tag is
// computed over salt ‖ iv ‖ ciphertext and stored alongside the ciphertext,
// independently of GCM's built-in tag. This keeps tamper detection intact
// even if the cipher is ever swapped for a non-authenticated mode, and it
// also authenticates the key derivation inputs.
func ComputeMAC(key, data []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(data)
	return mac.Sum(nil)
}

// VerifyMAC reports whether tag is the valid HMAC-SHA256 tag of data under
// key. Comparison is constant-time: the cost does not depend on the
// position of the first mismatching byte.
func VerifyMAC(key, data, tag []byte) bool {
	expected := ComputeMAC(key, data)
	return hmac.Equal(expected, tag)
}
