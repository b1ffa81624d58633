package sim

import (
	"io"
	"os"
	"sync"
)

// BlockSize is the size of one card block in bytes.
const BlockSize = 512

// Store defines the backing media of a simulated card.
// Implementations provide block-level storage operations.
type Store interface {
	// BlockCount returns the capacity in blocks.
	BlockCount() uint64

	// ReadBlock copies block lba into buf (len(buf) >= BlockSize).
	ReadBlock(lba uint32, buf []byte) error

	// WriteBlock stores buf[:BlockSize] at block lba.
	WriteBlock(lba uint32, buf []byte) error
}

// MemoryStore implements Store with a sparse in-memory block map. Blocks
// never written read back as zeros, so a multi-gigabyte card costs only
// the blocks actually used.
type MemoryStore struct {
	blocks   map[uint32]*[BlockSize]byte
	count    uint64
	readOnly bool
	mutex    sync.RWMutex
}

// NewMemoryStore creates an empty in-memory store holding count blocks.
func NewMemoryStore(count uint64) *MemoryStore {
	return &MemoryStore{
		blocks: make(map[uint32]*[BlockSize]byte),
		count:  count,
	}
}

// BlockCount returns the number of blocks.
func (m *MemoryStore) BlockCount() uint64 {
	return m.count
}

// ReadBlock reads one block from memory.
func (m *MemoryStore) ReadBlock(lba uint32, buf []byte) error {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if uint64(lba) >= m.count {
		return io.EOF
	}
	if len(buf) < BlockSize {
		return io.ErrShortBuffer
	}

	if b, ok := m.blocks[lba]; ok {
		copy(buf, b[:])
	} else {
		clear(buf[:BlockSize])
	}
	return nil
}

// WriteBlock writes one block to memory.
func (m *MemoryStore) WriteBlock(lba uint32, buf []byte) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.readOnly {
		return os.ErrPermission
	}
	if uint64(lba) >= m.count {
		return io.EOF
	}
	if len(buf) < BlockSize {
		return io.ErrShortBuffer
	}

	b, ok := m.blocks[lba]
	if !ok {
		b = new([BlockSize]byte)
		m.blocks[lba] = b
	}
	copy(b[:], buf)
	return nil
}

// Put writes data starting at block lba, spanning as many blocks as needed.
// The tail of the last block is zero-filled. It bypasses the read-only flag
// and is meant for laying out card images in tests.
func (m *MemoryStore) Put(lba uint32, data []byte) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for len(data) > 0 {
		b := new([BlockSize]byte)
		n := copy(b[:], data)
		m.blocks[lba] = b
		data = data[n:]
		lba++
	}
}

// IsReadOnly returns whether the store rejects writes.
func (m *MemoryStore) IsReadOnly() bool {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.readOnly
}

// SetReadOnly sets the read-only flag.
func (m *MemoryStore) SetReadOnly(readOnly bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.readOnly = readOnly
}

// FileStore implements Store using a card image file. The image may be
// sparse or shorter than the card; missing blocks read as zeros and writes
// extend the file.
type FileStore struct {
	file     *os.File
	count    uint64
	readOnly bool
	mutex    sync.RWMutex
}

// NewFileStore opens (creating if needed) an image file for a card of
// count blocks. If readOnly is true, the file is opened in read-only mode.
func NewFileStore(path string, count uint64, readOnly bool) (*FileStore, error) {
	flags := os.O_RDWR | os.O_CREATE
	if readOnly {
		flags = os.O_RDONLY
	}

	file, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return nil, err
	}

	return &FileStore{
		file:     file,
		count:    count,
		readOnly: readOnly,
	}, nil
}

// BlockCount returns the number of blocks.
func (f *FileStore) BlockCount() uint64 {
	return f.count
}

// ReadBlock reads one block from the image.
func (f *FileStore) ReadBlock(lba uint32, buf []byte) error {
	f.mutex.RLock()
	defer f.mutex.RUnlock()

	if uint64(lba) >= f.count {
		return io.EOF
	}
	if len(buf) < BlockSize {
		return io.ErrShortBuffer
	}

	n, err := f.file.ReadAt(buf[:BlockSize], int64(lba)*BlockSize)
	if err != nil && err != io.EOF {
		return err
	}
	clear(buf[n:BlockSize])
	return nil
}

// WriteBlock writes one block to the image.
func (f *FileStore) WriteBlock(lba uint32, buf []byte) error {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if f.readOnly {
		return os.ErrPermission
	}
	if uint64(lba) >= f.count {
		return io.EOF
	}
	if len(buf) < BlockSize {
		return io.ErrShortBuffer
	}

	_, err := f.file.WriteAt(buf[:BlockSize], int64(lba)*BlockSize)
	return err
}

// Sync flushes image writes to disk.
func (f *FileStore) Sync() error {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if f.readOnly {
		return nil
	}
	return f.file.Sync()
}

// Close closes the underlying file.
func (f *FileStore) Close() error {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if f.file != nil {
		err := f.file.Close()
		f.file = nil
		return err
	}
	return nil
}

// WriteAt writes data to s starting at block lba, spanning as many blocks
// as needed. The tail of the last block is zero-filled.
func WriteAt(s Store, lba uint32, data []byte) error {
	var buf [BlockSize]byte
	for len(data) > 0 {
		n := copy(buf[:], data)
		clear(buf[n:])
		if err := s.WriteBlock(lba, buf[:]); err != nil {
			return err
		}
		data = data[n:]
		lba++
	}
	return nil
}
