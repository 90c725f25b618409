/*
Package ngram implements a context-conditioned statistical language model
over token sequences.

A Model is trained on cleaned sentences, builds a frequency-gated vocabulary
and per-context next-token probability tables, and generates or continues
text using backoff and temperature sampling. Trained models can be saved to
and restored from a structured JSON file.

An untrained model still answers every query: generation falls back to a
small fixed grammar and suggestions to a hard-coded stub list, so callers
never need to special-case the untrained state.
*/
package ngram
