package keymap

import "strings"

// Descriptor is one HID interface as reported by the host's enumeration.
// An InterfaceNbr of -1 means the entry is not a distinct interface.
type Descriptor struct {
	Path         string
	InterfaceNbr int
	Usage        uint16
	UsagePage    uint16
	VendorID     uint16
	ProductID    uint16
}

// EnumerateFunc lists the HID interfaces exposed for a vendor/product pair.
type EnumerateFunc func(vid, pid uint16) ([]Descriptor, error)

// Selection holds the resolved channel paths. Both are always non-empty.
type Selection struct {
	RequestPath string
	DataPath    string
}

type ChannelKind int

const (
	ChannelUnrelated ChannelKind = iota
	ChannelRequest
	ChannelData
)

const vendorUsagePage = 0xff00

// ChannelKind classifies a descriptor by the marker the host embeds in its
// path. The markers are opaque labels for the device's logical collections.
func (c Config) ChannelKind(d Descriptor) ChannelKind {
	if d.InterfaceNbr == -1 || d.Usage != 1 || d.UsagePage != vendorUsagePage {
		return ChannelUnrelated
	}
	if strings.Contains(d.Path, c.RequestMarker) {
		return ChannelRequest
	}
	if strings.Contains(d.Path, c.DataMarker) {
		return ChannelData
	}
	return ChannelUnrelated
}

// Resolve enumerates the interfaces of the configured device and selects the
// request and data channel paths. Exactly one interface must match each
// channel marker. No device is opened.
func Resolve(enum EnumerateFunc, cfg Config) (Selection, error) {
	var sel Selection

	devs, err := enum(cfg.VendorID, cfg.ProductID)
	if err != nil {
		return sel, err
	}
	if len(devs) == 0 {
		return sel, &DeviceNotFoundError{VendorID: cfg.VendorID, ProductID: cfg.ProductID}
	}

	for _, d := range devs {
		switch cfg.ChannelKind(d) {
		case ChannelRequest:
			if sel.RequestPath != "" {
				return Selection{}, &AmbiguousDeviceError{Channel: "request", First: sel.RequestPath, Second: d.Path}
			}
			sel.RequestPath = d.Path
		case ChannelData:
			if sel.DataPath != "" {
				return Selection{}, &AmbiguousDeviceError{Channel: "data", First: sel.DataPath, Second: d.Path}
			}
			sel.DataPath = d.Path
		}
	}

	if sel.RequestPath == "" {
		return Selection{}, &ChannelNotFoundError{Channel: "request"}
	}
	if sel.DataPath == "" {
		return Selection{}, &ChannelNotFoundError{Channel: "data"}
	}

	return sel, nil
}
