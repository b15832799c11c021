// Package preklad translates single web articles from Slovak to Czech.
// It fetches a page, isolates the article body, applies dictionary-based
// lexical substitution to its text while preserving markup structure,
// rewrites known internal links to their Czech equivalents, downloads
// referenced images, and lays out a per-run output directory ready for
// import into a content-management system.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, fs/, sqlite/).
package preklad
