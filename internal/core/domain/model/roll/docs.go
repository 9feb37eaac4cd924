// Package roll contains the material roll aggregate of the stock ledger.
//
// A Roll is a physical reel of raw material identified by a generated barcode.
// The aggregate owns the roll's remaining length and its single active
// reservation, and enforces the stock rules: a roll can hold at most one
// reservation at a time, reserving deducts from the remaining length,
// consuming settles the reservation and credits the unused remainder back,
// and slicing a jumbo roll retires it in favor of narrower child rolls.
package roll
