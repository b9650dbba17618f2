// romloader.go - ROM image assembly, sandboxed against a restricted
// directory the way the reference file I/O device protects host file access

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ROMBanks lists the canonical Space Invaders ROM bank filenames in the
// order they load into 0x0000-0x1FFF. Each bank is 0x800 bytes.
var ROMBanks = [4]string{"invaders.h", "invaders.g", "invaders.f", "invaders.e"}

const romBankSize = 0x800

// ROMLoader loads ROM images from a restricted base directory, rejecting
// absolute paths and parent-directory traversal the same way the
// reference FileIODevice's sanitizePath does.
type ROMLoader struct {
	baseDir string
}

func NewROMLoader(baseDir string) (*ROMLoader, error) {
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("romloader: resolving base dir: %w", err)
	}
	return &ROMLoader{baseDir: absBase}, nil
}

func (l *ROMLoader) sanitizePath(name string) (string, bool) {
	if filepath.IsAbs(name) || strings.Contains(name, "..") {
		return "", false
	}
	full := filepath.Join(l.baseDir, name)
	rel, err := filepath.Rel(l.baseDir, full)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", false
	}
	return full, true
}

func (l *ROMLoader) readFile(name string) ([]byte, error) {
	full, ok := l.sanitizePath(name)
	if !ok {
		return nil, fmt.Errorf("romloader: rejected path %q", name)
	}
	return os.ReadFile(full)
}

// LoadBanked concatenates the four canonical bank files (h, g, f, e, in that
// order) into the 0x0000-0x1FFF program image and writes them into mem.
func (l *ROMLoader) LoadBanked(mem *[65536]byte) error {
	offset := 0
	for _, bank := range ROMBanks {
		data, err := l.readFile(bank)
		if err != nil {
			return fmt.Errorf("romloader: loading bank %s: %w", bank, err)
		}
		if len(data) != romBankSize {
			return fmt.Errorf("romloader: bank %s is %d bytes, want %d", bank, len(data), romBankSize)
		}
		copy(mem[offset:offset+romBankSize], data)
		offset += romBankSize
	}
	return nil
}

// LoadFlat loads a single flat image file at the given memory offset,
// useful for test-exerciser binaries (TST8080 and similar) that ship as one
// file rather than four banks.
func (l *ROMLoader) LoadFlat(mem *[65536]byte, name string, offset uint16) error {
	data, err := l.readFile(name)
	if err != nil {
		return fmt.Errorf("romloader: loading %s: %w", name, err)
	}
	if int(offset)+len(data) > len(mem) {
		return fmt.Errorf("romloader: %s (%d bytes) overflows memory at offset 0x%04X", name, len(data), offset)
	}
	copy(mem[offset:], data)
	return nil
}
