package wire

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"
)

func TestFrameRoundTrip(t *testing.T) {
	payload := []byte("hello frame")

	frame, err := EncodeFrame(payload)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(frame) != LengthPrefixSize+len(payload) {
		t.Fatalf("frame length = %d, want %d", len(frame), LengthPrefixSize+len(payload))
	}
	if binary.BigEndian.Uint32(frame[:LengthPrefixSize]) != uint32(len(payload)) {
		t.Error("length prefix does not match payload size")
	}

	decoded, err := DecodeFrame(frame)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !bytes.Equal(decoded, payload) {
		t.Errorf("round trip mismatch: %q", decoded)
	}
}

func TestDecodeFrame_Partial(t *testing.T) {
	frame, err := EncodeFrame([]byte("full payload"))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	_, err = DecodeFrame(frame[:len(frame)-3])
	if !IsFrameError(err, FrameErrorPartial) {
		t.Errorf("expected partial frame error, got %v", err)
	}

	_, err = DecodeFrame([]byte{0x00, 0x01})
	if !IsFrameError(err, FrameErrorPartial) {
		t.Errorf("expected partial frame error for short prefix, got %v", err)
	}
}

func TestDecodeFrame_TooLarge(t *testing.T) {
	frame := make([]byte, LengthPrefixSize)
	binary.BigEndian.PutUint32(frame, MaxPayloadSize+1)

	_, err := DecodeFrame(frame)
	if !IsFrameError(err, FrameErrorTooLarge) {
		t.Errorf("expected too-large frame error, got %v", err)
	}
}

func TestEncodeFrame_TooLarge(t *testing.T) {
	_, err := EncodeFrame(make([]byte, MaxPayloadSize+1))
	if !IsFrameError(err, FrameErrorTooLarge) {
		t.Errorf("expected too-large frame error, got %v", err)
	}
}

func TestFrameReader_ReadsSequentialFrames(t *testing.T) {
	var buf bytes.Buffer
	for _, payload := range []string{"first", "second"} {
		frame, err := EncodeFrame([]byte(payload))
		if err != nil {
			t.Fatalf("encode %q: %v", payload, err)
		}
		buf.Write(frame)
	}

	reader := NewFrameReader(&buf)
	for _, want := range []string{"first", "second"} {
		payload, err := reader.ReadFrame()
		if err != nil {
			t.Fatalf("read frame: %v", err)
		}
		if string(payload) != want {
			t.Errorf("read %q, want %q", payload, want)
		}
	}

	if _, err := reader.ReadFrame(); err != io.EOF {
		t.Errorf("expected io.EOF at stream end, got %v", err)
	}
}

func TestFrameReader_TruncatedPayload(t *testing.T) {
	frame, err := EncodeFrame([]byte("truncated"))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	reader := NewFrameReader(bytes.NewReader(frame[:len(frame)-2]))
	_, err = reader.ReadFrame()
	if !IsFrameError(err, FrameErrorPartial) {
		t.Errorf("expected partial frame error, got %v", err)
	}
}
