// Package features encodes work metadata into fixed-length numeric
// vectors for the incremental predictor.
//
// The schema has exactly core.FeatureCount (33) slots grouped into
// year, title, creator, content-type and likelihood features. Missing
// metadata encodes as neutral values (0.5 for unknown probabilities,
// zeros for absent indicators) rather than being dropped, so vectors
// from sparse and rich metadata stay comparable.
//
// The slot order is a persistence contract shared with stored model
// weights; see Names for the canonical ordering.
package features
