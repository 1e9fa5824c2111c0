package cuckoomap

// emptyFingerprint marks an unoccupied bucket slot. It is deliberately a
// fixed non-zero byte: a key's natural digest can legitimately be all zero,
// so zero must stay representable as a real fingerprint. Digests that
// collide with the sentinel are perturbed during derivation, see
// Map.fingerprintFromHash.
const emptyFingerprint = 0xFF

// fingerprint is the fixed-width digest stored in place of the original key.
// Invariant: fingerprint == sentinel <=> slot unoccupied.
type fingerprint [FingerprintSize]byte

func emptyFp() fingerprint {
	return fingerprint{emptyFingerprint}
}

func (fp fingerprint) isEmpty() bool {
	return fp == emptyFp()
}

// fingerprintFromBytes reconstructs a fingerprint from its raw byte form.
// It fails on the sentinel pattern: callers holding a digest that collides
// with it must re-hash or perturb instead.
func fingerprintFromBytes(b []byte) (fingerprint, bool) {
	var fp fingerprint
	if len(b) != FingerprintSize {
		return fp, false
	}
	copy(fp[:], b)
	if fp.isEmpty() {
		return fingerprint{}, false
	}
	return fp, true
}
