// Package jbudget provides the core model of a personal budget ledger:
// accounts, tags, movements and the transactions that group them.
//
// The model is fully in-memory and single-threaded. Derived values such as
// an account balance or a transaction total are never cached: they are
// recomputed from the current state of the graph on every read, so they
// always reflect the latest mutations.
//
// The core functionalities include:
//   - Entity Model: value-holding Account, Tag, Movement and Transaction
//     types that validate every construction and mutation up front.
//   - Ledger: the aggregate owning all entities, gate-keeping uniqueness
//     and the cross-entity cleanup rules.
//   - Controller: the single facade front ends and persistence
//     collaborators talk to, tracking whether the data has been saved.
//   - Data Persistence: a row-oriented text format (one file per entity
//     kind) that round-trips the whole ledger, plus pluggable export and
//     import managers.
//
// This package serves as the foundational logic for the `jb` command-line
// tool.
package jbudget
