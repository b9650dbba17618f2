package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTestBank(t *testing.T, dir, name string, size int, fill byte) {
	t.Helper()
	data := make([]byte, size)
	for i := range data {
		data[i] = fill
	}
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}

func TestROMLoaderRejectsAbsolutePath(t *testing.T) {
	loader, err := NewROMLoader(t.TempDir())
	if err != nil {
		t.Fatalf("NewROMLoader: %v", err)
	}
	if _, ok := loader.sanitizePath("/etc/passwd"); ok {
		t.Fatalf("sanitizePath accepted an absolute path")
	}
}

func TestROMLoaderRejectsParentTraversal(t *testing.T) {
	loader, err := NewROMLoader(t.TempDir())
	if err != nil {
		t.Fatalf("NewROMLoader: %v", err)
	}
	if _, ok := loader.sanitizePath("../secret"); ok {
		t.Fatalf("sanitizePath accepted a parent-traversal path")
	}
}

func TestROMLoaderLoadBankedConcatenatesInOrder(t *testing.T) {
	dir := t.TempDir()
	writeTestBank(t, dir, "invaders.h", romBankSize, 0x11)
	writeTestBank(t, dir, "invaders.g", romBankSize, 0x22)
	writeTestBank(t, dir, "invaders.f", romBankSize, 0x33)
	writeTestBank(t, dir, "invaders.e", romBankSize, 0x44)

	loader, err := NewROMLoader(dir)
	if err != nil {
		t.Fatalf("NewROMLoader: %v", err)
	}
	var mem [65536]byte
	if err := loader.LoadBanked(&mem); err != nil {
		t.Fatalf("LoadBanked: %v", err)
	}
	requireEqualU8(t, "mem[0]", mem[0], 0x11)
	requireEqualU8(t, "mem[0x800]", mem[0x800], 0x22)
	requireEqualU8(t, "mem[0x1000]", mem[0x1000], 0x33)
	requireEqualU8(t, "mem[0x1800]", mem[0x1800], 0x44)
}

func TestROMLoaderLoadBankedRejectsWrongSize(t *testing.T) {
	dir := t.TempDir()
	writeTestBank(t, dir, "invaders.h", romBankSize-1, 0x11)
	writeTestBank(t, dir, "invaders.g", romBankSize, 0x22)
	writeTestBank(t, dir, "invaders.f", romBankSize, 0x33)
	writeTestBank(t, dir, "invaders.e", romBankSize, 0x44)

	loader, err := NewROMLoader(dir)
	if err != nil {
		t.Fatalf("NewROMLoader: %v", err)
	}
	var mem [65536]byte
	if err := loader.LoadBanked(&mem); err == nil {
		t.Fatalf("expected an error for a wrong-sized bank")
	}
}

func TestROMLoaderLoadFlatAtOffset(t *testing.T) {
	dir := t.TempDir()
	writeTestBank(t, dir, "TST8080.COM", 16, 0xAA)

	loader, err := NewROMLoader(dir)
	if err != nil {
		t.Fatalf("NewROMLoader: %v", err)
	}
	var mem [65536]byte
	if err := loader.LoadFlat(&mem, "TST8080.COM", 0x0100); err != nil {
		t.Fatalf("LoadFlat: %v", err)
	}
	requireEqualU8(t, "mem[0x0100]", mem[0x0100], 0xAA)
	requireEqualU8(t, "mem[0x010F]", mem[0x010F], 0xAA)
	requireEqualU8(t, "mem[0x00FF] untouched", mem[0x00FF], 0x00)
}

func TestROMLoaderLoadFlatRejectsOverflow(t *testing.T) {
	dir := t.TempDir()
	writeTestBank(t, dir, "big.bin", 32, 0xAA)

	loader, err := NewROMLoader(dir)
	if err != nil {
		t.Fatalf("NewROMLoader: %v", err)
	}
	var mem [65536]byte
	if err := loader.LoadFlat(&mem, "big.bin", 0xFFF0); err == nil {
		t.Fatalf("expected an overflow error")
	}
}
