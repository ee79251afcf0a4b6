package irprint

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/irtext/irtext/ir"
)

// DomainModule is the domain prefix for module fingerprints. The version
// suffix enables future algorithm migration.
const DomainModule = "irtext/module/v1"

// Fingerprint computes a content identity for a module: the SHA-256 of
// its printed text with domain separation, hex-encoded. Because Print is
// deterministic, equal modules always fingerprint identically, so the
// value is a stable handle for caching or change detection on emitted
// files.
//
// Format: SHA256(domain + 0x00 + text). The null byte separator prevents
// domain/data boundary ambiguity.
func Fingerprint(m *ir.Module) string {
	h := sha256.New()
	h.Write([]byte(DomainModule))
	h.Write([]byte{0x00})
	h.Write([]byte(Print(m)))
	return hex.EncodeToString(h.Sum(nil))
}
