// Package posgrados provides a question-answering service over the
// postgraduate catalog of the UBA law school. It scrapes a fixed set of
// known catalog pages into a structured knowledge base, retrieves the
// most relevant program for a natural language question, and grounds a
// text-generation call on the retrieved record.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., sqlite/,
// gemini/, goquery/) or the concern they orchestrate (scrape/, cache/,
// retrieve/, rag/).
package posgrados
