package exitcode

// The CLI contract is a single failure exit code: every error kind
// (usage, discovery, parse, schema, conflict, write) exits 1.
const (
	Success = 0
	Failure = 1
)
