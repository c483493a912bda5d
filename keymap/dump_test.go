package keymap

import "testing"

func TestDumpReadHeader(t *testing.T) {
	cfg := DefaultConfig()

	want := "0000  05 84 d8 00\n0004  00 00\n"
	if got := DumpFrame(cfg.ReadHeader); got != want {
		t.Fatalf("dump mismatch:\n%q\nwant:\n%q", got, want)
	}
	if len(cfg.ReadHeader) != 6 {
		t.Fatalf("read header length changed: %d", len(cfg.ReadHeader))
	}
}

func TestDumpWriteFrame(t *testing.T) {
	cfg := DefaultConfig()
	frame := append(append([]byte{}, cfg.WriteHeader...), 0xaa, 0xbb)

	want := "0000  06 04 d8 00\n0004  40 00 00 00\n0008  aa bb\n"
	if got := DumpFrame(frame); got != want {
		t.Fatalf("dump mismatch:\n%q\nwant:\n%q", got, want)
	}
	if len(frame) != 10 {
		t.Fatalf("frame length changed: %d", len(frame))
	}
}

func TestDumpEmptyFrame(t *testing.T) {
	if got := DumpFrame(nil); got != "" {
		t.Fatalf("empty frame must dump to nothing, got %q", got)
	}
}
