// Package crypto provides the cryptographic primitives for envseal.
//
// This package handles key derivation, authenticated encryption, and
// independent MAC computation. It composes standard primitives and never
// implements its own KDF or cipher.
//
// # Encryption Architecture
//
// Each value is protected with password-derived authenticated encryption:
//
//  1. A fresh 32-byte salt is generated per encryption operation
//  2. Argon2id derives 64 bytes from (secret, salt): a 32-byte AES key
//     and a 32-byte HMAC key
//  3. AES-256-GCM encrypts the value under a fresh 12-byte IV
//  4. HMAC-SHA256 tags salt ‖ iv ‖ ciphertext with the MAC key
//
// Because every value gets its own salt, every value gets its own derived
// keys. That eliminates IV-reuse risk across values at the cost of one
// Argon2 pass per value, which is intentional: the derivation cost is the
// brute-force defense.
//
// # Two Authentication Layers
//
// The GCM ciphertext keeps its built-in 16-byte tag, and the external
// HMAC is layered on top. Decryption verifies the HMAC first (constant
// time), then opens the GCM ciphertext. The external tag additionally
// covers the salt and IV, so tampering with the derivation inputs is
// caught before any expensive work happens with attacker-controlled data.
//
// # Argon2id Parameters
//
// time=4, memory=256 MiB, parallelism=3. These are fixed: changing them
// silently would make existing encrypted values underivable.
package crypto
