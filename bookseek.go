// Package bookseek extracts structured bibliographic records from scraped
// ebook search-results pages and normalizes them into a fixed record schema
// consumable by a downstream indexing pipeline. The pages it targets have no
// stable markup: candidate results are located by their detail-link pattern
// and per-entry fields are recovered from surrounding text with best-effort
// pattern matching, so extraction degrades to partial records rather than
// failing outright.
//
// This package contains domain types, interfaces, and the pure extraction
// and normalization logic following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., goquery/, rod/), with one package per searchable site
// (e.g., annas/).
package bookseek
