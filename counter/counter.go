package counter

// Counter is a cumulative metric, e.g. seed candidates tested
type Counter interface {
	Value() int64
	RatePerSec() int64

	Add(n int64)
}
