//go:build darwin || linux

package ndi

import (
	"testing"
)

func TestSender_NilSafe(t *testing.T) {
	var s *Sender
	if err := s.Close(); err != nil {
		t.Errorf("nil Close() = %v, want nil", err)
	}
	s.SendVideo(&VideoFrame{})
	s.SendAudio(&AudioFrame{})
}

func TestSender_Closed(t *testing.T) {
	s := &Sender{}
	s.SendVideo(&VideoFrame{})
	s.SendAudio(&AudioFrame{})
	s.SendVideo(nil)
	s.SendAudio(nil)
	if err := s.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close() = %v", err)
	}
}

func TestSender_SendAndReuseBuffer(t *testing.T) {
	if !IsAvailable() {
		t.Skip("NDI runtime not available")
	}

	sender, err := NewSender(&SenderConfig{Name: "ndi-go send test"})
	if err != nil {
		t.Fatalf("NewSender: %v", err)
	}
	defer sender.Close()

	const w, h = 320, 180
	buf := make([]byte, w*h*4)
	frame := NewVideoFrame(w, h, FourCCVideoBGRA, 30, 1, buf, w*4)

	// The send contract: once SendVideo returns the buffer belongs to the
	// caller again and may be rewritten for the next frame.
	for i := 0; i < 5; i++ {
		for j := range buf {
			buf[j] = byte(i * 50)
		}
		sender.SendVideo(frame)
	}

	samples := make([]byte, 480*2*4)
	audio := NewAudioFrame(48000, 2, 480, samples, 480*4)
	for i := 0; i < 5; i++ {
		sender.SendAudio(audio)
	}
}

func TestSender_Defaults(t *testing.T) {
	cfg := DefaultSenderConfig()
	if cfg.Name == "" {
		t.Error("default sender config has no name")
	}
	if !cfg.ClockVideo || cfg.ClockAudio {
		t.Error("default sender config should clock video only")
	}
}
