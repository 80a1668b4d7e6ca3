package session

import "mockview/internal/interview"

// Compile-time interface checks.
var (
	_ interview.Store = (*MemoryStore)(nil)
	_ interview.Store = (*PostgresStore)(nil)
)
