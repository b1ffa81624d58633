// Package prof captures pprof profiles of host tools, mainly to measure
// index scans over large card ranges.
//
// It is conditionally compiled using the "profile" build tag:
//
//	go build -tags profile ./cmd/sdtool
//	sdtool --cpuprofile scan.prof --image card.img index build
//
// Without the tag, [Start] with an empty [Options] returns an inert
// [Session], and asking for any profile fails with [pkg.ErrNotSupported].
//
// # Profiles
//
// A [Session] streams the CPU profile for its whole lifetime. Snapshot
// profiles are written when it stops:
//
//	s, err := prof.Start(prof.Options{CPU: "cpu.prof", Heap: "heap.prof"})
//	if err != nil {
//	    return err
//	}
//	defer s.Stop()
//
// Only one session may profile the CPU at a time; a second one fails with
// [ErrActive].
package prof
