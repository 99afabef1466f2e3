// Package spectrum computes the discrete frequency-domain representation
// of a sampled voltage waveform and answers amplitude queries against it.
//
// An [Engine] owns one waveform. [Engine.Transform] infers the sampling
// period from the overall time span (span / sample count, which assumes
// uniform spacing and is silently wrong for irregular sampling), computes
// the full complex DFT and derives the one-sided amplitude spectrum:
// magnitudes scaled by 2/N, except the DC bin which is scaled by 1/N
// because it has no mirror pair to fold in.
//
// After Transform has completed, the query methods are read-only and safe
// for concurrent use by multiple readers, as long as no goroutine calls
// Transform on the same Engine concurrently (single-writer/multi-reader).
package spectrum
