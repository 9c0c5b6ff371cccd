// Package reembed provides functionality for reembedding stored works
// with a new or updated embedding model.
//
// This package supports batch processing of work records, progress
// tracking, retry logic with exponential backoff, and vector
// normalization to ensure compatibility with cosine similarity search.
package reembed
