package keymap

// LogFunc receives diagnostic output from the library. Higher levels give
// more detail.
type LogFunc func(level int, format string, param ...interface{})

type Config struct {
	VendorID  uint16
	ProductID uint16

	// MaxRequestSize is the largest feature report the device can return.
	MaxRequestSize int

	// ReadHeader is sent on the request channel to ask for the keymap.
	ReadHeader []byte

	// WriteHeader prefixes the keymap payload on the data channel.
	WriteHeader []byte

	// DataReportID is the feature report id the keymap is read back under.
	DataReportID byte

	// ResponseHeaderLen is the number of echo/header bytes the device
	// prepends to a read response.
	ResponseHeaderLen int

	// RequestMarker and DataMarker are opaque tokens the host embeds in the
	// device path of each logical collection. They are host-specific and
	// must not be parsed further.
	RequestMarker string
	DataMarker    string

	LogFunc LogFunc
}

// DefaultConfig returns the protocol constants for the supported keyboard
// family. These values must match the device firmware exactly.
func DefaultConfig() Config {
	return Config{
		VendorID:  0x05ac,
		ProductID: 0x024f,

		MaxRequestSize: 0x7ff,

		ReadHeader:  []byte{0x05, 0x84, 0xd8, 0x00, 0x00, 0x00},
		WriteHeader: []byte{0x06, 0x04, 0xd8, 0x00, 0x40, 0x00, 0x00, 0x00},

		DataReportID:      0x06,
		ResponseHeaderLen: 8,

		RequestMarker: "&Col05",
		DataMarker:    "&Col06",
	}
}

func (c Config) logf(level int, format string, param ...interface{}) {
	if c.LogFunc != nil {
		c.LogFunc(level, format, param...)
	}
}
