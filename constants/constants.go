package constants

import "time"

const (
	// RetryCount defind retry count
	RetryCount = 6
	// RetryInterval define retry intervals
	RetryInterval = time.Second * 10
	// DefaultParallel define default parallel price lookups
	DefaultParallel = 8
	// DateKeyPattern define date key pattern
	DateKeyPattern = "2006-01-02"
	// RowDatePattern define history table date cell pattern
	RowDatePattern = "Jan 02, 2006"
)
