package wire

import (
	"github.com/vmihailenco/msgpack/v5"

	"github.com/justapithecus/tram/transport"
)

// Call is the outer envelope for a request dispatched to a bus address.
// Body carries the msgpack encoding of the per-operation request message.
type Call struct {
	// CorrelationID pairs the call with its reply. Unique per call.
	CorrelationID string `msgpack:"correlation_id"`
	// ReplyTo is the bus channel the handler publishes the reply to.
	ReplyTo string `msgpack:"reply_to"`
	// Op is the operation slug (e.g. "get-by-id").
	Op string `msgpack:"op"`
	// Headers carries adapter-configured request headers.
	Headers map[string]string `msgpack:"headers,omitempty"`
	// Body is the msgpack-encoded per-operation request message.
	Body []byte `msgpack:"body"`
}

// Reply is the outer envelope for a handler's reply.
// Body carries the msgpack encoding of the per-operation reply message.
type Reply struct {
	CorrelationID string `msgpack:"correlation_id"`
	Op            string `msgpack:"op"`
	Body          []byte `msgpack:"body"`
}

// EncodeCall encodes a Call envelope into a complete frame.
func EncodeCall(call *Call) ([]byte, error) {
	payload, err := msgpack.Marshal(call)
	if err != nil {
		return nil, &FrameError{Kind: FrameErrorDecode, Msg: "failed to encode call envelope", Err: err}
	}
	return EncodeFrame(payload)
}

// DecodeCall decodes a complete frame into a Call envelope.
func DecodeCall(frame []byte) (*Call, error) {
	payload, err := DecodeFrame(frame)
	if err != nil {
		return nil, err
	}
	var call Call
	if err := msgpack.Unmarshal(payload, &call); err != nil {
		return nil, &FrameError{Kind: FrameErrorDecode, Msg: "failed to decode call envelope", Err: err}
	}
	return &call, nil
}

// EncodeReply encodes a Reply envelope into a complete frame.
func EncodeReply(reply *Reply) ([]byte, error) {
	payload, err := msgpack.Marshal(reply)
	if err != nil {
		return nil, &FrameError{Kind: FrameErrorDecode, Msg: "failed to encode reply envelope", Err: err}
	}
	return EncodeFrame(payload)
}

// DecodeReply decodes a complete frame into a Reply envelope.
func DecodeReply(frame []byte) (*Reply, error) {
	payload, err := DecodeFrame(frame)
	if err != nil {
		return nil, err
	}
	var reply Reply
	if err := msgpack.Unmarshal(payload, &reply); err != nil {
		return nil, &FrameError{Kind: FrameErrorDecode, Msg: "failed to decode reply envelope", Err: err}
	}
	return &reply, nil
}

// Address computes the bus address for an operation under the given prefix,
// e.g. Address("remote-data", transport.OpExists) == "remote-data.exists".
// Query rides the get-all address: both list operations share one handler.
func Address(prefix string, op transport.Operation) string {
	if op == transport.OpQuery {
		op = transport.OpFindAll
	}
	return prefix + "." + op.Slug()
}
