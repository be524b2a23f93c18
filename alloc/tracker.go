package alloc

// Stats is a snapshot of a [Tracker].
type Stats struct {
	// Acquired is the number of regions or objects acquired.
	Acquired int
	// Released is the number of regions or objects released.
	Released int
	// Resized is the number of region resizes. Each resize also counts one
	// acquisition and one release.
	Resized int
	// LiveBytes is the size of everything acquired and not yet released.
	LiveBytes int
}

// Live returns the number of acquisitions not yet released.
func (s Stats) Live() int {
	return s.Acquired - s.Released
}

// Tracker accounts for the acquisitions and releases made on behalf of one owner.
// The zero value is ready to use.
type Tracker struct {
	stats Stats
}

// Stats returns the current accounting.
func (t *Tracker) Stats() Stats {
	return t.stats
}

func (t *Tracker) acquire(bytes int) {
	t.stats.Acquired++
	t.stats.LiveBytes += bytes
}

func (t *Tracker) release(bytes int) {
	t.stats.Released++
	t.stats.LiveBytes -= bytes
}
