package prof

// Profile names a pprof snapshot profile.
type Profile string

// Snapshot profiles.
const (
	ProfileHeap      Profile = "heap"
	ProfileAllocs    Profile = "allocs"
	ProfileGoroutine Profile = "goroutine"
	ProfileBlock     Profile = "block"
)

// Options selects the profiles a Session writes. Empty paths are skipped.
type Options struct {
	// CPU is the path of the CPU profile.
	CPU string

	// Heap is the path of the heap snapshot written at Stop.
	Heap string

	// Block is the path of the blocking profile written at Stop. Block
	// profiling is enabled for the lifetime of the session.
	Block string
}

// Empty reports whether no profile is requested.
func (o Options) Empty() bool {
	return o.CPU == "" && o.Heap == "" && o.Block == ""
}

// snapshots lists the snapshot profiles of o with their paths.
func (o Options) snapshots() []snapshot {
	var s []snapshot
	if o.Heap != "" {
		s = append(s, snapshot{ProfileHeap, o.Heap})
	}
	if o.Block != "" {
		s = append(s, snapshot{ProfileBlock, o.Block})
	}
	return s
}

type snapshot struct {
	profile Profile
	path    string
}
