package settings

import "encoding/json"

// Codec turns setting values into store payloads and back.
// Decode receives a non-nil pointer to the destination value.
type Codec interface {
	Encode(v any) ([]byte, error)
	Decode(data []byte, target any) error
}

// JSONCodec is the default Codec.
type JSONCodec struct{}

func (JSONCodec) Encode(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (JSONCodec) Decode(data []byte, target any) error {
	return json.Unmarshal(data, target)
}
