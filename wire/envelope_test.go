package wire

import (
	"reflect"
	"testing"

	"github.com/justapithecus/tram/transport"
)

func TestCallRoundTrip(t *testing.T) {
	body, err := EncodeMessage(&GetByID{Resource: "users", ID: "123"})
	if err != nil {
		t.Fatalf("encode message: %v", err)
	}

	call := &Call{
		CorrelationID: "corr-1",
		ReplyTo:       "remote-data.reply.node-a",
		Op:            "get-by-id",
		Headers:       map[string]string{"tenant": "acme"},
		Body:          body,
	}

	frame, err := EncodeCall(call)
	if err != nil {
		t.Fatalf("encode call: %v", err)
	}

	decoded, err := DecodeCall(frame)
	if err != nil {
		t.Fatalf("decode call: %v", err)
	}
	if !reflect.DeepEqual(call, decoded) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", decoded, call)
	}

	var msg GetByID
	if err := DecodeMessage(decoded.Body, &msg); err != nil {
		t.Fatalf("decode inner message: %v", err)
	}
	if msg.Resource != "users" || msg.ID != "123" {
		t.Errorf("unexpected inner message: %+v", msg)
	}
}

func TestReplyRoundTrip(t *testing.T) {
	body, err := EncodeMessage(&ExistsReply{
		Status: Status{Success: true, StatusCode: 200},
		Exists: true,
	})
	if err != nil {
		t.Fatalf("encode message: %v", err)
	}

	frame, err := EncodeReply(&Reply{CorrelationID: "corr-2", Op: "exists", Body: body})
	if err != nil {
		t.Fatalf("encode reply: %v", err)
	}

	decoded, err := DecodeReply(frame)
	if err != nil {
		t.Fatalf("decode reply: %v", err)
	}
	if decoded.CorrelationID != "corr-2" || decoded.Op != "exists" {
		t.Errorf("unexpected envelope: %+v", decoded)
	}

	var msg ExistsReply
	if err := DecodeMessage(decoded.Body, &msg); err != nil {
		t.Fatalf("decode inner message: %v", err)
	}
	if !msg.Success || msg.StatusCode != 200 || !msg.Exists {
		t.Errorf("unexpected inner message: %+v", msg)
	}
}

func TestMessageRoundTrip_CountPreservesInt64(t *testing.T) {
	const bigCount = int64(1)<<40 + 7

	body, err := EncodeMessage(&CountReply{
		Status: Status{Success: true, StatusCode: 200},
		Count:  bigCount,
	})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	var msg CountReply
	if err := DecodeMessage(body, &msg); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if msg.Count != bigCount {
		t.Errorf("count = %d, want %d", msg.Count, bigCount)
	}
}

func TestDecodeCall_Garbage(t *testing.T) {
	frame, err := EncodeFrame([]byte{0xff, 0xfe, 0xfd})
	if err != nil {
		t.Fatalf("encode frame: %v", err)
	}

	_, err = DecodeCall(frame)
	if !IsFrameError(err, FrameErrorDecode) {
		t.Errorf("expected decode frame error, got %v", err)
	}
}

func TestAddress(t *testing.T) {
	cases := map[transport.Operation]string{
		transport.OpFindByID: "remote-data.get-by-id",
		transport.OpFindAll:  "remote-data.get-all",
		transport.OpQuery:    "remote-data.get-all", // Query rides the get-all route
		transport.OpSave:     "remote-data.save",
		transport.OpDelete:   "remote-data.delete",
		transport.OpExists:   "remote-data.exists",
		transport.OpCount:    "remote-data.count",
	}
	for op, want := range cases {
		if got := Address("remote-data", op); got != want {
			t.Errorf("Address(remote-data, %s) = %q, want %q", op, got, want)
		}
	}
}
