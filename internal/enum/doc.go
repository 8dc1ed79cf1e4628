// Package enum implements the core enumeration model: named finite sets of
// string-canonical values with per-value named formats, indifferent lookup,
// ordered multi-value collections, and a packed flags form for storage.
//
// # Core Types
//
// Enum is a named, ordered set of members. Member keys are indifferent to
// case and input type, so "One", "one", 1 and "1" address the same slot.
// Insertion order is preserved; re-adding a key overwrites in place. Enums
// derive new enums with Dup, Without and Only; Extend is the one in-place
// mutator.
//
// Value is a single member: an immutable canonical string plus named
// alternate representations. Format(name) is open-ended and falls back to
// the canonical form for names with no explicit representation. Is(name)
// answers mnemonic membership questions and rejects non-member names with
// ErrNotMember instead of silently answering false.
//
// ValueList is an ordered collection resolved against an enum. Inputs that
// do not resolve to a member pass through verbatim so validation happens at
// the host boundary, not inside the collection. Dump and ParseList implement
// the packed "|a|b|" flags form.
//
// # Equality
//
// Two notions coexist. Loose equality (Value.Equal, ValueList.Equal, the
// Match hook) compares string forms exactly and treats nil as never equal.
// Strict equality (Value.Identical) additionally requires the same owning
// enum. Lookup indifference does not extend to equality: Lookup("Admin")
// finds the member "admin" but Equal("Admin") on it reports false.
package enum
