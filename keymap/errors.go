package keymap

import "fmt"

// DeviceNotFoundError is returned when enumeration yields no interfaces for
// the configured vendor/product pair.
type DeviceNotFoundError struct {
	VendorID  uint16
	ProductID uint16
}

func (e *DeviceNotFoundError) Error() string {
	return fmt.Sprintf("no devices matching VID: %04x PID: %04x found", e.VendorID, e.ProductID)
}

// ChannelNotFoundError is returned when no interface carries the marker for
// the named channel ("request" or "data").
type ChannelNotFoundError struct {
	Channel string
}

func (e *ChannelNotFoundError) Error() string {
	return fmt.Sprintf("no %s device found", e.Channel)
}

// AmbiguousDeviceError is returned when two interfaces both carry the same
// channel marker. Addressing either blindly could corrupt the exchange, so
// resolution refuses to pick one.
type AmbiguousDeviceError struct {
	Channel string
	First   string
	Second  string
}

func (e *AmbiguousDeviceError) Error() string {
	return fmt.Sprintf("multiple %s devices found: %s and %s", e.Channel, e.First, e.Second)
}

// TransportError wraps a failure from the underlying HID transport.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
