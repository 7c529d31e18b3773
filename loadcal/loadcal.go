// Package loadcal computes load statistics of chained hash tables
package loadcal

// Stats describes how entries are spread over buckets
type Stats struct {
	Buckets     int // number of buckets (capacity)
	UsedBuckets int // number of non-empty buckets
	Entries     int // total number of entries

	MaxChainLen int
}

// LoadFactor = entries / buckets
func (s Stats) LoadFactor() float64 {
	if s.Buckets == 0 {
		return 0
	}
	return float64(s.Entries) / float64(s.Buckets)
}

// AvgChainLen is the average length of the non-empty chains
func (s Stats) AvgChainLen() float64 {
	if s.UsedBuckets == 0 {
		return 0
	}
	return float64(s.Entries) / float64(s.UsedBuckets)
}

// Calculator accumulates chain lengths bucket by bucket
type Calculator struct {
	stats Stats
}

// AddBucket counts a bucket holding chainLen entries
func (c *Calculator) AddBucket(chainLen int) {
	c.stats.Buckets++
	if chainLen == 0 {
		return
	}

	c.stats.UsedBuckets++
	c.stats.Entries += chainLen

	if chainLen > c.stats.MaxChainLen {
		c.stats.MaxChainLen = chainLen
	}
}

// Result returns the accumulated stats
func (c *Calculator) Result() Stats {
	return c.stats
}

// Reset ...
func (c *Calculator) Reset() {
	c.stats = Stats{}
}
