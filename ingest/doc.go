// Package ingest provides pipeline orchestration for loading candidate
// works into the catalog.
//
// The Pipeline type manages the ingestion workflow for works, including:
//   - Adding works to storage
//   - Generating title embeddings asynchronously when an embedder is
//     configured
//
// Embedding runs concurrently on a worker pool. Errors during async
// processing are logged but do not fail the ingestion operation; works
// without vectors simply fall back to lexical matching.
package ingest
