package keymap

// Transport carries feature reports to and from one channel of the device.
type Transport interface {
	SendFeatureReport(b []byte) (int, error)
	GetFeatureReport(reportID byte, maxLen int) ([]byte, error)
}

// Session performs one keymap exchange over a pair of resolved channels.
// It holds no state between operations.
type Session struct {
	cfg     Config
	request Transport
	data    Transport
}

func NewSession(cfg Config, request, data Transport) *Session {
	return &Session{
		cfg:     cfg,
		request: request,
		data:    data,
	}
}

// ReadKeymap asks the device for its keymap and returns the raw blob. The
// command header goes out on the request channel, the response comes back on
// the data channel with ResponseHeaderLen bytes of echo prepended. A response
// shorter than the echo yields an empty blob; the device likely has not
// flushed its buffer yet, which is for the caller to deal with.
func (s *Session) ReadKeymap() ([]byte, error) {
	n, err := s.request.SendFeatureReport(s.cfg.ReadHeader)
	if err != nil {
		return nil, &TransportError{Op: "send read command", Err: err}
	}
	s.cfg.logf(1, "Sent %d bytes to keyboard.", n)

	resp, err := s.data.GetFeatureReport(s.cfg.DataReportID, s.cfg.MaxRequestSize)
	if err != nil {
		return nil, &TransportError{Op: "receive keymap", Err: err}
	}
	s.cfg.logf(1, "Received %d bytes from keyboard.", len(resp))

	if len(resp) <= s.cfg.ResponseHeaderLen {
		return []byte{}, nil
	}
	return resp[s.cfg.ResponseHeaderLen:], nil
}

// WriteKeymap sends header + blob as a single feature report on the data
// channel and returns the transport-reported count. The protocol has no
// acknowledgement, so no further validation is possible. Oversized blobs are
// rejected by the transport, not here.
func (s *Session) WriteKeymap(blob []byte) (int, error) {
	frame := make([]byte, 0, len(s.cfg.WriteHeader)+len(blob))
	frame = append(frame, s.cfg.WriteHeader...)
	frame = append(frame, blob...)

	n, err := s.data.SendFeatureReport(frame)
	if err != nil {
		return 0, &TransportError{Op: "send keymap", Err: err}
	}
	s.cfg.logf(1, "Sent %d bytes to keyboard.", n)
	return n, nil
}

// Recorder is a Transport that performs no device I/O. Frames that would
// have been sent are captured for display, and reads return nothing. It
// backs the dry-run mode: the session logic is identical, only the transport
// differs.
type Recorder struct {
	Frames [][]byte
}

func (r *Recorder) SendFeatureReport(b []byte) (int, error) {
	frame := make([]byte, len(b))
	copy(frame, b)
	r.Frames = append(r.Frames, frame)
	return len(b), nil
}

func (r *Recorder) GetFeatureReport(reportID byte, maxLen int) ([]byte, error) {
	return nil, nil
}
