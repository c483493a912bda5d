//go:build !purehid

package hidio

import (
	"errors"

	"github.com/sstallion/go-hid"
)

var ErrTooShort = errors.New("report length must include the report id")

type hidapiDevice struct {
	dev *hid.Device
}

func openInternal(path string) (Device, error) {
	dev, err := hid.OpenPath(path)
	if err != nil {
		return nil, err
	}

	return &hidapiDevice{dev: dev}, nil
}

func (d *hidapiDevice) SendFeatureReport(b []byte) (int, error) {
	return d.dev.SendFeatureReport(b)
}

func (d *hidapiDevice) GetFeatureReport(reportID byte, maxLen int) ([]byte, error) {
	if maxLen < 1 {
		return nil, ErrTooShort
	}

	// hidapi wants the report id in the first byte and returns the report
	// in place, id included.
	buf := make([]byte, maxLen)
	buf[0] = reportID

	n, err := d.dev.GetFeatureReport(buf)
	if err != nil {
		return nil, err
	}

	return buf[:n], nil
}

func (d *hidapiDevice) Close() error {
	return d.dev.Close()
}
