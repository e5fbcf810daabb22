package wire

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"

	eserrors "github.com/envseal/envseal/internal/errors"
)

// Prefix is the literal that marks an encrypted value. It doubles as a
// format version: a future incompatible encoding bumps the number.
const Prefix = "ENC2:"

// Field sizes after base64 decoding.
const (
	saltSize = 32
	ivSize   = 12
	macSize  = 32
)

// base64Pattern matches the standard base64 alphabet with optional padding.
// Checked before decoding so obviously malformed segments are rejected
// without allocation.
var base64Pattern = regexp.MustCompile(`^[A-Za-z0-9+/]+={0,2}$`)

// Record is the decoded form of one encrypted value. It exists only
// transiently: as the return value of encryption or the parsed input to
// decryption. Construct it once and do not mutate it.
type Record struct {
	Salt       []byte
	IV         []byte
	CipherText []byte
	MAC        []byte
}

// MACInput returns the byte sequence the external MAC is computed over:
// salt ‖ iv ‖ ciphertext.
func (r *Record) MACInput() []byte {
	input := make([]byte, 0, len(r.Salt)+len(r.IV)+len(r.CipherText))
	input = append(input, r.Salt...)
	input = append(input, r.IV...)
	input = append(input, r.CipherText...)
	return input
}

// Encode serializes a Record into its canonical textual form:
//
//	ENC2:<salt_b64>:<iv_b64>:<cipherText_b64>:<mac_b64>
func Encode(r *Record) string {
	enc := base64.StdEncoding
	return Prefix + strings.Join([]string{
		enc.EncodeToString(r.Salt),
		enc.EncodeToString(r.IV),
		enc.EncodeToString(r.CipherText),
		enc.EncodeToString(r.MAC),
	}, ":")
}

// Decode parses and validates the canonical textual form of an encrypted
// value. Returns ErrInvalidFormat when the prefix is missing, the body does
// not split into exactly four parts, any part is empty or not valid base64,
// or the salt, IV, or MAC has the wrong decoded length.
func Decode(text string) (*Record, error) {
	if !strings.HasPrefix(text, Prefix) {
		return nil, fmt.Errorf("%w: missing %q prefix", eserrors.ErrInvalidFormat, Prefix)
	}

	parts := strings.Split(strings.TrimPrefix(text, Prefix), ":")
	if len(parts) != 4 {
		return nil, fmt.Errorf("%w: expected 4 parts, got %d", eserrors.ErrInvalidFormat, len(parts))
	}

	names := [4]string{"salt", "iv", "ciphertext", "mac"}
	decoded := make([][]byte, 4)
	for i, part := range parts {
		b, err := decodeBase64(part)
		if err != nil {
			return nil, fmt.Errorf("%w: %s segment: %v", eserrors.ErrInvalidFormat, names[i], err)
		}
		decoded[i] = b
	}

	r := &Record{
		Salt:       decoded[0],
		IV:         decoded[1],
		CipherText: decoded[2],
		MAC:        decoded[3],
	}

	if len(r.Salt) != saltSize {
		return nil, fmt.Errorf("%w: salt decodes to %d bytes, want %d",
			eserrors.ErrInvalidFormat, len(r.Salt), saltSize)
	}
	if len(r.IV) != ivSize {
		return nil, fmt.Errorf("%w: iv decodes to %d bytes, want %d",
			eserrors.ErrInvalidFormat, len(r.IV), ivSize)
	}
	if len(r.MAC) != macSize {
		return nil, fmt.Errorf("%w: mac decodes to %d bytes, want %d",
			eserrors.ErrInvalidFormat, len(r.MAC), macSize)
	}

	return r, nil
}

// IsEncrypted reports whether text is a structurally valid encrypted value.
// It never returns an error: any value failing the structural check is
// treated as plaintext. The orchestrator uses this probe to decide whether
// a value needs encrypting, decrypting, or skipping.
func IsEncrypted(text string) bool {
	_, err := Decode(text)
	return err == nil
}

// decodeBase64 validates a segment three ways before trusting it: alphabet
// regex, length divisible by four, and an actual decode.
func decodeBase64(s string) ([]byte, error) {
	if s == "" {
		return nil, fmt.Errorf("empty segment")
	}
	if !base64Pattern.MatchString(s) {
		return nil, fmt.Errorf("invalid base64 characters")
	}
	if len(s)%4 != 0 {
		return nil, fmt.Errorf("length %d is not a multiple of 4", len(s))
	}

	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("base64 decode failed: %v", err)
	}

	return b, nil
}
