package keymap

import (
	"errors"
	"testing"
)

func fakeEnum(devs []Descriptor, err error) EnumerateFunc {
	return func(vid, pid uint16) ([]Descriptor, error) {
		return devs, err
	}
}

func vendorIface(path string) Descriptor {
	return Descriptor{
		Path:         path,
		InterfaceNbr: 1,
		Usage:        1,
		UsagePage:    0xff00,
		VendorID:     0x05ac,
		ProductID:    0x024f,
	}
}

func TestResolveSelectsChannels(t *testing.T) {
	devs := []Descriptor{
		{Path: `\\?\hid#vid_05ac&pid_024f&col01#a`, InterfaceNbr: -1, Usage: 6, UsagePage: 1},
		vendorIface(`\\?\hid#vid_05ac&pid_024f&Col05#b`),
		vendorIface(`\\?\hid#vid_05ac&pid_024f&Col06#c`),
	}

	sel, err := Resolve(fakeEnum(devs, nil), DefaultConfig())
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if sel.RequestPath != devs[1].Path {
		t.Fatalf("wrong request path: %s", sel.RequestPath)
	}
	if sel.DataPath != devs[2].Path {
		t.Fatalf("wrong data path: %s", sel.DataPath)
	}
}

func TestResolveNoDevices(t *testing.T) {
	_, err := Resolve(fakeEnum(nil, nil), DefaultConfig())

	var nf *DeviceNotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected DeviceNotFoundError, got %v", err)
	}
	if nf.VendorID != 0x05ac || nf.ProductID != 0x024f {
		t.Fatalf("error carries wrong ids: %04x:%04x", nf.VendorID, nf.ProductID)
	}
}

func TestResolveDuplicateRequest(t *testing.T) {
	devs := []Descriptor{
		vendorIface(`path1&Col05#x`),
		vendorIface(`path2&Col05#y`),
		vendorIface(`path3&Col06#z`),
	}

	_, err := Resolve(fakeEnum(devs, nil), DefaultConfig())

	var amb *AmbiguousDeviceError
	if !errors.As(err, &amb) {
		t.Fatalf("expected AmbiguousDeviceError, got %v", err)
	}
	if amb.Channel != "request" {
		t.Fatalf("wrong channel: %s", amb.Channel)
	}
	if amb.First != devs[0].Path || amb.Second != devs[1].Path {
		t.Fatalf("error does not name both paths: %s, %s", amb.First, amb.Second)
	}
}

func TestResolveMissingChannel(t *testing.T) {
	devs := []Descriptor{
		vendorIface(`path1&Col05#x`),
	}

	_, err := Resolve(fakeEnum(devs, nil), DefaultConfig())

	var missing *ChannelNotFoundError
	if !errors.As(err, &missing) {
		t.Fatalf("expected ChannelNotFoundError, got %v", err)
	}
	if missing.Channel != "data" {
		t.Fatalf("wrong channel: %s", missing.Channel)
	}
}

func TestResolveIgnoresFilteredInterfaces(t *testing.T) {
	// Markers on descriptors that fail the vendor-usage filter must not
	// count as channel matches.
	devs := []Descriptor{
		{Path: `composite&Col05#a`, InterfaceNbr: -1, Usage: 1, UsagePage: 0xff00},
		{Path: `keyboard&Col06#b`, InterfaceNbr: 0, Usage: 6, UsagePage: 1},
		vendorIface(`real&Col05#c`),
		vendorIface(`real&Col06#d`),
	}

	sel, err := Resolve(fakeEnum(devs, nil), DefaultConfig())
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if sel.RequestPath != `real&Col05#c` || sel.DataPath != `real&Col06#d` {
		t.Fatalf("filter not applied: %+v", sel)
	}
}

func TestResolveEnumerateError(t *testing.T) {
	boom := errors.New("hidapi not available")

	_, err := Resolve(fakeEnum(nil, boom), DefaultConfig())
	if !errors.Is(err, boom) {
		t.Fatalf("enumeration error not surfaced: %v", err)
	}
}

func TestChannelKind(t *testing.T) {
	cfg := DefaultConfig()

	if k := cfg.ChannelKind(vendorIface(`a&Col05#`)); k != ChannelRequest {
		t.Fatalf("expected request, got %d", k)
	}
	if k := cfg.ChannelKind(vendorIface(`a&Col06#`)); k != ChannelData {
		t.Fatalf("expected data, got %d", k)
	}
	if k := cfg.ChannelKind(vendorIface(`a&Col07#`)); k != ChannelUnrelated {
		t.Fatalf("expected unrelated, got %d", k)
	}
}
