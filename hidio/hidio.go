// Package hidio exchanges feature reports with a single HID interface,
// addressed by its host device path.
package hidio

type Device interface {
	SendFeatureReport(b []byte) (int, error)
	GetFeatureReport(reportID byte, maxLen int) ([]byte, error)
	Close() error
}

func Open(path string) (Device, error) {
	return openInternal(path)
}
