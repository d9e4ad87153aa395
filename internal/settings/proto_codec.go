package settings

import (
	"fmt"
	"reflect"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

var protoMessageType = reflect.TypeFor[proto.Message]()

// ProtoCodec stores values in protobuf wire format. proto.Message values are
// marshalled as-is; booleans, strings, integers (including named enums),
// floats and byte slices travel inside the matching wrapperspb message.
type ProtoCodec struct{}

func (ProtoCodec) Encode(v any) ([]byte, error) {
	if m, ok := v.(proto.Message); ok {
		return proto.Marshal(m)
	}

	rv := reflect.ValueOf(v)
	var m proto.Message

	switch rv.Kind() {
	case reflect.Bool:
		m = wrapperspb.Bool(rv.Bool())
	case reflect.String:
		m = wrapperspb.String(rv.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		m = wrapperspb.Int64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		m = wrapperspb.UInt64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		m = wrapperspb.Double(rv.Float())
	case reflect.Slice:
		if rv.Type().Elem().Kind() != reflect.Uint8 {
			return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
		}
		m = wrapperspb.Bytes(rv.Bytes())
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}

	return proto.Marshal(m)
}

func (ProtoCodec) Decode(data []byte, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("%w: decode target %T is not a non-nil pointer", ErrUnsupportedType, target)
	}

	elem := rv.Elem()
	if elem.Kind() == reflect.Pointer && elem.Type().Implements(protoMessageType) {
		if elem.IsNil() {
			elem.Set(reflect.New(elem.Type().Elem()))
		}
		return proto.Unmarshal(data, elem.Interface().(proto.Message))
	}

	switch elem.Kind() {
	case reflect.Bool:
		var w wrapperspb.BoolValue
		if err := proto.Unmarshal(data, &w); err != nil {
			return err
		}
		elem.SetBool(w.GetValue())
	case reflect.String:
		var w wrapperspb.StringValue
		if err := proto.Unmarshal(data, &w); err != nil {
			return err
		}
		elem.SetString(w.GetValue())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		var w wrapperspb.Int64Value
		if err := proto.Unmarshal(data, &w); err != nil {
			return err
		}
		if elem.OverflowInt(w.GetValue()) {
			return fmt.Errorf("value %d overflows %s", w.GetValue(), elem.Type())
		}
		elem.SetInt(w.GetValue())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		var w wrapperspb.UInt64Value
		if err := proto.Unmarshal(data, &w); err != nil {
			return err
		}
		if elem.OverflowUint(w.GetValue()) {
			return fmt.Errorf("value %d overflows %s", w.GetValue(), elem.Type())
		}
		elem.SetUint(w.GetValue())
	case reflect.Float32, reflect.Float64:
		var w wrapperspb.DoubleValue
		if err := proto.Unmarshal(data, &w); err != nil {
			return err
		}
		elem.SetFloat(w.GetValue())
	case reflect.Slice:
		if elem.Type().Elem().Kind() != reflect.Uint8 {
			return fmt.Errorf("%w: %s", ErrUnsupportedType, elem.Type())
		}
		var w wrapperspb.BytesValue
		if err := proto.Unmarshal(data, &w); err != nil {
			return err
		}
		elem.SetBytes(w.GetValue())
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedType, elem.Type())
	}
	return nil
}
