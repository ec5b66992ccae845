package adapter

import (
	"encoding/json"
	"fmt"
)

// jsonCodecName is registered as the content-subtype on both ends of the
// proxy service channel ("application/grpc+json").
const jsonCodecName = "json"

// jsonCodec lets the proxy service contract be plain Go structs instead of
// generated protobuf messages.
type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("json codec marshal %T: %w", v, err)
	}
	return b, nil
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("json codec unmarshal %T: %w", v, err)
	}
	return nil
}

func (jsonCodec) Name() string {
	return jsonCodecName
}
