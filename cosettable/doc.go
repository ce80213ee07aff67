// Package cosettable implements right-coset enumeration for a finitely
// presented group (the Todd-Coxeter algorithm). Each generator is paired
// with an inverse generator: NewInvolutive covers the Coxeter case, where
// every generator is its own inverse, and New takes an explicit pairing
// for rotation-subgroup presentations, where r and r⁻¹ are distinct
// letters.
//
// A Table is built from a generator count, a set of relator words (words
// equal to the identity), and a set of subgroup-generator words (words
// fixing coset 0). Enumerate runs the HLT-with-scan-all strategy to
// completion, a Diverged error, or context cancellation. Once Enumerate
// returns successfully the table is frozen: NumCosets, Next and Words
// read fixed data.
package cosettable
