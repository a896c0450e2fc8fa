// Package match provides name normalization, Levenshtein distance
// calculation, and similarity ranking.
//
// The emitter uses it to pick the bounded sample of known-good types cited
// in help text: registered types are ranked by name similarity to the
// offending type so the most relevant alternatives come first.
package match
