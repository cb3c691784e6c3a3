package exitcode

const (
	Success         = 0
	UsageError      = 1
	ValidationError = 2
	DBConnError     = 3
	CopyError       = 4
	NormalizeError  = 5
	// PartialSuccess means the run finished but some values were rejected.
	PartialSuccess = 6
)
