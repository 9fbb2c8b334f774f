package handranks

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"unsafe"

	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"
)

// Table file names, relative to the directory passed to [Init].
const (
	StandardTableFile = "standard_handranks.dat"
	JokerTableFile    = "handranks.dat"
)

var (
	initOnce   sync.Once
	initErr    error
	standard   *Table
	withJokers *Table
)

// Init prepares the package for use: it loads the standard and
// joker-deck tables from dir, building and persisting them first if
// they are not already present. Init is idempotent -- later calls
// after the first return the first call's result without touching
// disk again, regardless of dir.
//
// Building from scratch walks tens of millions of hand ids and can
// take several minutes. [Lookup] never builds tables itself, so Init
// (directly, or via [Standard]/[WithJokers]) must run before it.
func Init(dir string) error {
	initOnce.Do(func() {
		log := zerolog.Nop()
		initErr = doInit(log, dir)
	})
	return initErr
}

// InitLogging is like [Init], but logs build progress to log.
func InitLogging(log zerolog.Logger, dir string) error {
	initOnce.Do(func() {
		initErr = doInit(log, dir)
	})
	return initErr
}

func doInit(log zerolog.Logger, dir string) error {
	stdPath := filepath.Join(dir, StandardTableFile)
	rows, err := loadOrBuild(log, stdPath, standardTableCount, func() *Table {
		return NewBuilder(log, StandardDeckSize, StandardTerminal).Build()
	})
	if err != nil {
		return fmt.Errorf("%w: standard table: %w", ErrTableIO, err)
	}
	standard = &Table{deckSize: StandardDeckSize, rowWidth: StandardDeckSize + 1, rows: rows}

	jokerPath := filepath.Join(dir, JokerTableFile)
	jrows, err := loadOrBuild(log, jokerPath, jokerTableCount, func() *Table {
		return NewBuilder(log, JokerDeckSize, JokerTerminal(standard)).Build()
	})
	if err != nil {
		return fmt.Errorf("%w: joker table: %w", ErrTableIO, err)
	}
	withJokers = &Table{deckSize: JokerDeckSize, rowWidth: JokerDeckSize + 1, rows: jrows}
	return nil
}

// loadOrBuild mmaps path if it already holds count uint32 rows,
// otherwise calls build, persists its result to path, and mmaps that.
func loadOrBuild(log zerolog.Logger, path string, count int, build func() *Table) ([]uint32, error) {
	if rows, err := mmapRows(path, count); err == nil {
		log.Info().Str("path", path).Msg("mapped existing table")
		return rows, nil
	}
	log.Info().Str("path", path).Msg("generating table")
	t := build()
	if err := persistRows(path, t.rows); err != nil {
		return nil, err
	}
	return mmapRows(path, count)
}

// persistRows writes rows to path as raw little-endian uint32s.
func persistRows(path string, rows []uint32) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriterSize(f, 1<<20)
	if err := binary.Write(w, binary.LittleEndian, rows); err != nil {
		return err
	}
	return w.Flush()
}

// mmapRows maps path read-only and reinterprets its bytes as a
// []uint32 of exactly count elements, failing if the file is any
// other size. The mapping is never unmapped -- the tables live for
// the life of the process.
func mmapRows(path string, count int) ([]uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	want := int64(count) * 4
	if fi.Size() != want {
		return nil, fmt.Errorf("%w: %s: want %d bytes, have %d", ErrTableIO, path, want, fi.Size())
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(want), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*uint32)(unsafe.Pointer(&data[0])), count), nil
}

// Standard returns the 52-card lookup table, building and persisting
// it under dir first via [Init] if necessary.
func Standard(dir string) (*Table, error) {
	if err := Init(dir); err != nil {
		return nil, err
	}
	return standard, nil
}

// WithJokers returns the 56-card lookup table, building and
// persisting it (and the standard table it depends on) under dir
// first via [Init] if necessary.
func WithJokers(dir string) (*Table, error) {
	if err := Init(dir); err != nil {
		return nil, err
	}
	return withJokers, nil
}
