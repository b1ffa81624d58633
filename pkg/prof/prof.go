//go:build profile

package prof

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"sync"

	"github.com/ardnew/softsd/pkg"
)

// ErrActive indicates another session is profiling the CPU.
var ErrActive = errors.New("cpu profile already active")

var (
	cpuMutex  sync.Mutex
	cpuActive bool
)

// Session is a running set of profiles.
type Session struct {
	opts Options
	cpu  *os.File
}

// Enabled reports whether profiling is compiled in.
func Enabled() bool {
	return true
}

// Start begins the profiles selected by opts.
func Start(opts Options) (*Session, error) {
	s := &Session{opts: opts}
	if opts.CPU != "" {
		cpuMutex.Lock()
		defer cpuMutex.Unlock()
		if cpuActive {
			return nil, ErrActive
		}
		f, err := os.Create(opts.CPU)
		if err != nil {
			return nil, fmt.Errorf("prof: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			f.Close()
			return nil, fmt.Errorf("prof: %w", err)
		}
		s.cpu = f
		cpuActive = true
	}
	if opts.Block != "" {
		runtime.SetBlockProfileRate(1)
	}
	pkg.LogDebug(pkg.ComponentConfig, "profiling started", "cpu", opts.CPU, "heap", opts.Heap, "block", opts.Block)
	return s, nil
}

// Stop ends the CPU profile and writes the snapshot profiles. It is safe
// to call more than once.
func (s *Session) Stop() error {
	var errs []error
	if s.cpu != nil {
		cpuMutex.Lock()
		pprof.StopCPUProfile()
		cpuActive = false
		cpuMutex.Unlock()
		errs = append(errs, s.cpu.Close())
		s.cpu = nil
	}
	if s.opts.Block != "" {
		defer runtime.SetBlockProfileRate(0)
	}
	for _, snap := range s.opts.snapshots() {
		errs = append(errs, write(snap))
	}
	s.opts = Options{}
	return errors.Join(errs...)
}

func write(snap snapshot) error {
	p := pprof.Lookup(string(snap.profile))
	if p == nil {
		return fmt.Errorf("prof: %w: profile %q", pkg.ErrInvalidParameter, snap.profile)
	}
	if snap.profile == ProfileHeap {
		runtime.GC()
	}
	f, err := os.Create(snap.path)
	if err != nil {
		return fmt.Errorf("prof: %w", err)
	}
	if err := p.WriteTo(f, 0); err != nil {
		f.Close()
		return fmt.Errorf("prof: %s: %w", snap.profile, err)
	}
	return f.Close()
}
