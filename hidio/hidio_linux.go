//go:build purehid && linux

package hidio

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"syscall"
	"unsafe"

	"golang.org/x/sys/unix"
)

// hidraw fallback for hosts without the hidapi C library.

type rawDevice struct {
	dev *os.File
}

func openInternal(path string) (Device, error) {
	dev, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	return &rawDevice{dev: dev}, nil
}

var (
	ErrTooLong  = errors.New("transfer is too long")
	ErrTooShort = errors.New("report length must include the report id")
)

// Report length is encoded in the upper bits of the ioctl number:
//
//	HIDIOCSFEATURE(0) = C0004806
//	HIDIOCGFEATURE(0) = C0004807
const (
	hidIOCSFeature = 0xC0004806
	hidIOCGFeature = 0xC0004807

	rawReportMax = 4096
)

func (h *rawDevice) SendFeatureReport(b []byte) (int, error) {
	var tmp [rawReportMax]byte

	if len(b) > len(tmp) {
		return 0, ErrTooLong
	}

	copy(tmp[:], b)

	_, _, errno := unix.Syscall(
		syscall.SYS_IOCTL,
		uintptr(h.dev.Fd()),
		uintptr(uint32(hidIOCSFeature)|uint32(len(b)<<16)),
		uintptr(unsafe.Pointer(&tmp)),
	)

	runtime.KeepAlive(tmp)

	if errno != 0 {
		return 0, os.NewSyscallError("SendFeatureReport", fmt.Errorf("%d", int(errno)))
	}

	return len(b), nil
}

func (h *rawDevice) GetFeatureReport(reportID byte, maxLen int) ([]byte, error) {
	var tmp [rawReportMax]byte

	if maxLen < 1 {
		return nil, ErrTooShort
	}
	if maxLen > len(tmp) {
		return nil, ErrTooLong
	}

	tmp[0] = reportID

	r1, _, errno := unix.Syscall(
		syscall.SYS_IOCTL,
		uintptr(h.dev.Fd()),
		uintptr(uint32(hidIOCGFeature)|uint32(maxLen<<16)),
		uintptr(unsafe.Pointer(&tmp)),
	)

	runtime.KeepAlive(tmp)

	if errno != 0 {
		return nil, os.NewSyscallError("GetFeatureReport", fmt.Errorf("%d", int(errno)))
	}

	n := int(r1)
	if n < 0 || n > maxLen {
		n = maxLen
	}

	buf := make([]byte, n)
	copy(buf, tmp[:n])

	return buf, nil
}

func (h *rawDevice) Close() error {
	return h.dev.Close()
}
