package response

const (
	defaultStackTraceDepth = 32
	// DefaultErrorMessage is what callers see for any unexpected failure;
	// details never leak past the log and the bug report.
	DefaultErrorMessage = "Internal server error"

	webhookMaxMessageLen = 5000
)
