package constants

const (
	APIPrefix = "v1"

	// DateLayout is the wire format of calendar days in query strings and calendar buckets.
	DateLayout = "2006-01-02"
)
