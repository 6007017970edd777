// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package store implements the survey services over the SQL record
// collections: poll and question authoring, response collection with
// pre-write validation, response aggregation, admin lookup, and the
// public content sections.
//
// Mutations run inside single transactions and allocate record ids
// through the persisted per-collection counters, so ids stay monotonic
// and are never reused after deletes. Failed validations return
// *ValidationError before anything is written; missing records return
// ErrNotFound; mutations against a poll owned by another admin return
// ErrForbidden.
package store
