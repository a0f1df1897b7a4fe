// Package keys provides RSA key helpers around the pkcs1 primitive core.
//
// API stability:
//
// Stable (SemVer-protected):
//   - Pure, deterministic helpers: the (n, e)/(n, d) key views, PEM and DER
//     codecs, and public-key fingerprints.
//
// Experimental:
//   - Filesystem-backed key storage and convenience helpers (KeyStore and
//     related functions). These are local-first utilities and are not part
//     of the long-term library contract.
package keys
