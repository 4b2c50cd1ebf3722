// Package c3ltc builds and decodes classical error-correcting codes
// placed on the squares of a left-right Cayley complex.
//
// Given a finite group G, two inverse-closed generating sets A and B, and
// two small linear codes C_A, C_B over the same prime field, this module:
//
//   - builds the left-right Cayley complex (package lrcomplex): vertices
//     = G, edges labeled by A (left multiplication) and B (right
//     multiplication), squares = equivalence classes of (a,g,b) triples
//     under the Klein-four identification;
//   - embeds C_A's and C_B's local parity constraints into a sparse
//     global parity matrix around every edge (package embed);
//   - row-reduces that matrix over F_p into generator and parity matrices
//     (package rowreduce);
//   - decodes noisy codewords by iterative local correction, either
//     edge-by-edge or vertex-by-vertex tensor decoding (packages tensor,
//     decode).
//
// The resulting code is the "c3LTC" (cubical, locally testable square
// code); package code wires the pieces above into that top-level
// construction plus its simpler sibling, ExpanderCode, built directly on
// a single Cayley graph's edges.
//
// Subpackages:
//
//	field/      — F_p arithmetic, dense vector/matrix helpers
//	group/      — group element interface, F_q^m and PSL(2,q), generator sampling
//	cayley/     — single-generator-set Cayley graph
//	lrcomplex/  — left-right Cayley complex
//	smallcode/  — small linear codes (Reed–Solomon, random linear codes)
//	embed/      — sparse global parity-matrix embedding
//	rowreduce/  — row-reduction oracle and sparse wire format
//	tensor/     — tensor-code decoder
//	decode/     — edge- and vertex-propagation global decoders
//	code/       — C3LTC and ExpanderCode, plus persistence
package c3ltc
