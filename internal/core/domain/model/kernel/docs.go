// Package kernel provides the primitives shared by every aggregate of the order
// lifecycle domain.
//
// The package includes:
//   - Identifier: an opaque, string-backed identifier parameterized by the aggregate
//     kind, so identifiers of different kinds never compare equal
//   - Clock, IDGenerator and Supplier: the injected capabilities aggregates use to
//     stamp timestamps and generate identifiers
//   - Advance: the rule that keeps updatedAt strictly increasing
//
// Aggregates never read the wall clock or generate identifiers on their own; the
// caller passes a Supplier, which keeps the domain deterministic under test.
package kernel
