/*
Package assistant wraps an n-gram model and a corpus processor behind a
conversational writing-helper interface.

An Assistant owns the model handle: it serializes training, guards reads
with a lock so the HTTP server and CLI can share one instance, and turns
free-form user messages into model calls via keyword intent
classification.
*/
package assistant
