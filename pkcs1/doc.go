// Package pkcs1 implements the PKCS #1 (RFC 3447) data conversion and RSA
// cryptographic primitives: I2OSP, OS2IP, RSAEP, RSADP, RSASP1 and RSAVP1.
//
// API stability:
//
// Stable (SemVer-protected):
//   - The codec and primitive functions, their range preconditions, and the
//     structured error kinds they return.
//
// These are the textbook primitives: raw modular exponentiation with exact
// octet-length semantics and no padding, hashing or blinding. Higher-level
// encryption and signature schemes belong to callers.
package pkcs1
