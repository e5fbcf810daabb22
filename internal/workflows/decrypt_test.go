package workflows

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/envseal/envseal/internal/envfile"
	eserrors "github.com/envseal/envseal/internal/errors"
)

func TestDecryptValue_MalformedInput(t *testing.T) {
	for _, text := range []string{"", "plaintext", "ENC2:", "ENC2:a:b:c:d"} {
		if _, err := DecryptValue(text, testKey); !errors.Is(err, eserrors.ErrInvalidFormat) {
			t.Errorf("DecryptValue(%q) expected ErrInvalidFormat, got: %v", text, err)
		}
	}
}

func TestDecryptValue_WrongKey(t *testing.T) {
	skipIfShort(t)

	encoded, err := encryptValue("sensitive", testKey)
	if err != nil {
		t.Fatalf("encryptValue returned error: %v", err)
	}

	_, err = DecryptValue(encoded, otherTestKey)
	if !errors.Is(err, eserrors.ErrAuthenticationFailed) {
		t.Errorf("expected ErrAuthenticationFailed for wrong key, got: %v", err)
	}
}

// flipBase64Char replaces the character at index i within the given segment
// with a different base64 alphabet character.
func flipBase64Char(t *testing.T, encoded string, segment, i int) string {
	t.Helper()

	parts := strings.Split(encoded, ":")
	// parts[0] is "ENC2"; segments are 1=salt, 2=iv, 3=ciphertext, 4=mac.
	seg := []byte(parts[segment])
	if seg[i] == 'A' {
		seg[i] = 'B'
	} else {
		seg[i] = 'A'
	}
	parts[segment] = string(seg)
	return strings.Join(parts, ":")
}

func TestDecryptValue_TamperedCiphertext(t *testing.T) {
	skipIfShort(t)

	encoded, err := encryptValue("sensitive", testKey)
	if err != nil {
		t.Fatalf("encryptValue returned error: %v", err)
	}

	tampered := flipBase64Char(t, encoded, 3, 0)
	_, err = DecryptValue(tampered, testKey)
	if !errors.Is(err, eserrors.ErrAuthenticationFailed) {
		t.Errorf("ciphertext tampering: expected ErrAuthenticationFailed, got: %v", err)
	}
}

func TestDecryptValue_TamperedMAC(t *testing.T) {
	skipIfShort(t)

	encoded, err := encryptValue("sensitive", testKey)
	if err != nil {
		t.Fatalf("encryptValue returned error: %v", err)
	}

	tampered := flipBase64Char(t, encoded, 4, 0)
	_, err = DecryptValue(tampered, testKey)
	if !errors.Is(err, eserrors.ErrAuthenticationFailed) {
		t.Errorf("MAC tampering: expected ErrAuthenticationFailed, got: %v", err)
	}
}

func TestDecryptValue_EmptyPlaintextRoundTrip(t *testing.T) {
	skipIfShort(t)

	// The orchestrator never encrypts empty values, but the value pipeline
	// itself must round trip them.
	encoded, err := encryptValue("", testKey)
	if err != nil {
		t.Fatalf("encryptValue returned error: %v", err)
	}
	plaintext, err := DecryptValue(encoded, testKey)
	if err != nil {
		t.Fatalf("DecryptValue returned error: %v", err)
	}
	if plaintext != "" {
		t.Errorf("empty plaintext round trip = %q", plaintext)
	}
}

func TestDecrypt_Reveal(t *testing.T) {
	skipIfShort(t)

	root, path := writeEnvFile(t, "SECRET=hunter2\nPLAIN=visible\n")
	if _, err := Encrypt(context.Background(), EncryptOptions{
		SecretKey: testKey,
		Root:      root,
		Variables: []string{"SECRET"},
	}); err != nil {
		t.Fatalf("Encrypt returned error: %v", err)
	}
	before := readFile(t, path)

	result, err := Decrypt(context.Background(), DecryptOptions{SecretKey: testKey, Root: root})
	if err != nil {
		t.Fatalf("Decrypt returned error: %v", err)
	}

	file := result.Files[0]
	if len(file.Variables) != 1 || file.Variables[0].Key != "SECRET" || file.Variables[0].Value != "hunter2" {
		t.Errorf("unexpected revealed variables: %+v", file.Variables)
	}
	if file.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1 (plaintext variable)", file.Skipped)
	}
	if result.Wrote {
		t.Error("reveal mode should not write")
	}
	if after := readFile(t, path); after != before {
		t.Error("reveal mode modified the file")
	}
}

func TestDecrypt_WriteBack(t *testing.T) {
	skipIfShort(t)

	root, path := writeEnvFile(t, "SECRET=hunter2\n")
	if _, err := Encrypt(context.Background(), EncryptOptions{SecretKey: testKey, Root: root}); err != nil {
		t.Fatalf("Encrypt returned error: %v", err)
	}

	result, err := Decrypt(context.Background(), DecryptOptions{
		SecretKey: testKey,
		Root:      root,
		Write:     true,
	})
	if err != nil {
		t.Fatalf("Decrypt returned error: %v", err)
	}
	if !result.Wrote {
		t.Error("write mode should report a write")
	}

	vars, _ := envfile.ExtractVariables(envfile.ParseLines(readFile(t, path)))
	if v, _ := vars.Get("SECRET"); v != "hunter2" {
		t.Errorf("SECRET = %q, want plaintext restored", v)
	}
}

func TestDecrypt_WrongKeyAborts(t *testing.T) {
	skipIfShort(t)

	root, path := writeEnvFile(t, "SECRET=hunter2\n")
	if _, err := Encrypt(context.Background(), EncryptOptions{SecretKey: testKey, Root: root}); err != nil {
		t.Fatalf("Encrypt returned error: %v", err)
	}
	before := readFile(t, path)

	_, err := Decrypt(context.Background(), DecryptOptions{
		SecretKey: otherTestKey,
		Root:      root,
		Write:     true,
	})
	if err == nil {
		t.Fatal("decrypt with wrong key should fail")
	}
	if !strings.Contains(err.Error(), "SECRET") {
		t.Errorf("error should name the variable, got: %v", err)
	}
	if after := readFile(t, path); after != before {
		t.Error("failed decrypt modified the file")
	}
}
