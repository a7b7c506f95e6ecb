// Package codec converts between in-memory transaction values and the byte
// layout used by the Bitcoin P2P and consensus serialization rules.
//
// Only the legacy (non-segwit) input side of a transaction is covered:
// CompactSize integers, transaction ids, outpoints, scripts, inputs and the
// version/lock time envelope around them. Every decoder reads from the front
// of the supplied buffer and reports how many bytes it consumed, so decoders
// compose by advancing an offset. Decoding never validates consensus rules.
package codec
