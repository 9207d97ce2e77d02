package db

// QueryLatencyStats returns the recent latency distribution of every query run so far.
func (c *Database) QueryLatencyStats() []QueryLatency {
	if c == nil || c.recorder == nil {
		return nil
	}
	return c.recorder.snapshot()
}
