package firestore

import (
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/mitchellh/mapstructure"
)

// timestampFormat is ISO-8601 with millisecond precision and a Z suffix,
// which is what the API stores for timestamp fields written by this client.
const timestampFormat = "2006-01-02T15:04:05.000Z"

// unsupportedTypeSentinel is the string sent in place of values that have no
// wire representation (functions, channels, complex numbers). Encoding is
// total: it never fails on exotic input.
const unsupportedTypeSentinel = "unsupported_type"

// EncodeDocument wraps a native field map as a request-ready wire document.
func EncodeDocument(data map[string]any) Document {
	return Document{Fields: EncodeFields(data)}
}

// EncodeFields converts a native field map into its typed-wrapper wire form.
func EncodeFields(data map[string]any) map[string]Value {
	fields := make(map[string]Value, len(data))
	for k, v := range data {
		fields[k] = EncodeValue(v)
	}
	return fields
}

// EncodeValue converts a single native value into its typed-wrapper wire
// form. Nested maps and lists are converted recursively. The input is never
// mutated.
func EncodeValue(v any) Value {
	switch val := v.(type) {
	case nil:
		return Value{NullValue: &jsonNull{}}
	case bool:
		return Value{BooleanValue: &val}
	case string:
		return Value{StringValue: &val}
	case time.Time:
		ts := val.UTC().Format(timestampFormat)
		return Value{TimestampValue: &ts}
	case int:
		return integerValue(strconv.FormatInt(int64(val), 10))
	case int8:
		return integerValue(strconv.FormatInt(int64(val), 10))
	case int16:
		return integerValue(strconv.FormatInt(int64(val), 10))
	case int32:
		return integerValue(strconv.FormatInt(int64(val), 10))
	case int64:
		return integerValue(strconv.FormatInt(val, 10))
	case uint:
		return integerValue(strconv.FormatUint(uint64(val), 10))
	case uint8:
		return integerValue(strconv.FormatUint(uint64(val), 10))
	case uint16:
		return integerValue(strconv.FormatUint(uint64(val), 10))
	case uint32:
		return integerValue(strconv.FormatUint(uint64(val), 10))
	case uint64:
		return integerValue(strconv.FormatUint(val, 10))
	case float32:
		return encodeFloat(float64(val))
	case float64:
		return encodeFloat(val)
	case []any:
		values := make([]Value, len(val))
		for i, e := range val {
			values[i] = EncodeValue(e)
		}
		return Value{ArrayValue: &ArrayValue{Values: values}}
	case map[string]any:
		return Value{MapValue: &MapValue{Fields: EncodeFields(val)}}
	}
	return encodeReflect(v)
}

func integerValue(s string) Value {
	return Value{IntegerValue: &s}
}

// encodeFloat classifies a float by its shortest decimal rendering: any
// rendering without a '.' goes out as integerValue, everything else as
// doubleValue. Magnitudes large or small enough to render in exponent form
// ("1e+21") therefore still travel as integerValue strings.
func encodeFloat(f float64) Value {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.Contains(s, ".") {
		return integerValue(s)
	}
	return Value{DoubleValue: &f}
}

// encodeReflect handles typed slices and string-keyed maps that do not
// arrive as []any / map[string]any, such as []string or map[string]int.
// Anything else encodes to the unsupported-type sentinel.
func encodeReflect(v any) Value {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Value{NullValue: &jsonNull{}}
		}
		return EncodeValue(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		values := make([]Value, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			values[i] = EncodeValue(rv.Index(i).Interface())
		}
		return Value{ArrayValue: &ArrayValue{Values: values}}
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			fields := make(map[string]Value, rv.Len())
			iter := rv.MapRange()
			for iter.Next() {
				fields[iter.Key().String()] = EncodeValue(iter.Value().Interface())
			}
			return Value{MapValue: &MapValue{Fields: fields}}
		}
	}
	s := unsupportedTypeSentinel
	return Value{StringValue: &s}
}

// DecodeDocument converts a wire document into plain native data.
func DecodeDocument(d Document) map[string]any {
	return DecodeFields(d.Fields)
}

// DecodeFields converts a wire field map back into native values.
func DecodeFields(fields map[string]Value) map[string]any {
	data := make(map[string]any, len(fields))
	for k, v := range fields {
		data[k] = DecodeValue(v)
	}
	return data
}

// DecodeValue converts a single typed-wrapper value back into a native
// value. A value with no recognized wrapper key decodes to nil, which also
// covers explicit nullValue fields. Timestamps decode to UTC time.Time; a
// timestamp string the server renders in an unexpected form is passed
// through unparsed.
func DecodeValue(v Value) any {
	switch {
	case v.StringValue != nil:
		return *v.StringValue
	case v.IntegerValue != nil:
		return decodeInteger(*v.IntegerValue)
	case v.DoubleValue != nil:
		return *v.DoubleValue
	case v.BooleanValue != nil:
		return *v.BooleanValue
	case v.TimestampValue != nil:
		if t, err := dateparse.ParseAny(*v.TimestampValue); err == nil {
			return t.UTC()
		}
		return *v.TimestampValue
	case v.ArrayValue != nil:
		out := make([]any, len(v.ArrayValue.Values))
		for i, e := range v.ArrayValue.Values {
			out[i] = DecodeValue(e)
		}
		return out
	case v.MapValue != nil:
		return DecodeFields(v.MapValue.Fields)
	}
	return nil
}

// decodeInteger parses the decimal-string integer form. Strings that exceed
// int64 or carry an exponent fall back to float64.
func decodeInteger(s string) any {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// DecodeInto binds a decoded field map onto a caller struct. Fields are
// matched by `firestore` tags, falling back to case-insensitive field names.
func DecodeInto(data map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "firestore",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(data)
}
