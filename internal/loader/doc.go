// Package loader reads delimited course catalogs into a catalog.Index.
//
// Each line holds an identifier, a title and zero or more prerequisite
// identifiers. Empty lines are skipped, lines with fewer than two fields are
// reported and skipped, and the rest are inserted in input order so the first
// occurrence of an identifier wins.
package loader
