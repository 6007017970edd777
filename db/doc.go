// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connection, schema creation, seed data, and
identifier generation.

# Drivers

Open switches between modernc.org/sqlite (the default, a single durable
file, also used by the tests) and lib/pq. The schema and all queries are
written portably: $N placeholders, no SERIAL, NOW(), or JSONB. Localized
text columns hold the three-locale JSON object as TEXT (see package i18n).

# Tables

  - admin: provisioned administrators
  - poll → question → mcq_option: the survey definition hierarchy
  - response → mcq_answer / text_answer: submissions and their answer rows
  - section: keyed public-site content
  - id_counter: per-collection identifier counters

# Identifiers

Ids are integers issued by NextID from the id_counter table, updated
inside the caller's transaction. They are strictly increasing per
collection and never reused after deletes; reload recomputes nothing.

# Seeding

Seed installs first-run demo data (admin@survey.com / admin123, two
sample polls with submissions, the public-site sections) and is a no-op
once an admin exists.
*/
package db
