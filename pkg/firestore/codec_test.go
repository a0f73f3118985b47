package firestore

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDocument_WireShape(t *testing.T) {
	doc := EncodeDocument(map[string]any{
		"a": 1,
		"b": []any{true, nil},
		"c": map[string]any{"d": "x"},
	})

	got, err := json.Marshal(doc)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"fields": {
			"a": {"integerValue": "1"},
			"b": {"arrayValue": {"values": [
				{"booleanValue": true},
				{"nullValue": null}
			]}},
			"c": {"mapValue": {"fields": {
				"d": {"stringValue": "x"}
			}}}
		}
	}`, string(got))
}

func TestEncodeValue(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"nil", nil, `{"nullValue": null}`},
		{"bool", true, `{"booleanValue": true}`},
		{"string", "hello", `{"stringValue": "hello"}`},
		{"int", 42, `{"integerValue": "42"}`},
		{"int64", int64(-7), `{"integerValue": "-7"}`},
		{"uint", uint(9), `{"integerValue": "9"}`},
		{"whole float", float64(5), `{"integerValue": "5"}`},
		{"fractional float", 5.5, `{"doubleValue": 5.5}`},
		{"negative fractional", -0.25, `{"doubleValue": -0.25}`},
		{"empty list", []any{}, `{"arrayValue": {"values": []}}`},
		{"empty map", map[string]any{}, `{"mapValue": {"fields": {}}}`},
		{"typed slice", []string{"a", "b"}, `{"arrayValue": {"values": [
			{"stringValue": "a"}, {"stringValue": "b"}
		]}}`},
		{"typed map", map[string]int{"n": 3}, `{"mapValue": {"fields": {
			"n": {"integerValue": "3"}
		}}}`},
		{"timestamp", time.Date(2023, 5, 1, 12, 30, 45, 123000000, time.UTC),
			`{"timestampValue": "2023-05-01T12:30:45.123Z"}`},
		{"func is unsupported", func() {}, `{"stringValue": "unsupported_type"}`},
		{"chan is unsupported", make(chan int), `{"stringValue": "unsupported_type"}`},
		{"complex is unsupported", complex(1, 2), `{"stringValue": "unsupported_type"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(EncodeValue(tt.input))
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestEncodeFloat_LargeMagnitude(t *testing.T) {
	// Shortest-form rendering of 1e21 has no decimal point, so it travels
	// as an integerValue string even though it is not an int64.
	got, err := json.Marshal(EncodeValue(1e21))
	require.NoError(t, err)
	assert.JSONEq(t, `{"integerValue": "1e+21"}`, string(got))

	got, err = json.Marshal(EncodeValue(1e-7))
	require.NoError(t, err)
	assert.JSONEq(t, `{"integerValue": "1e-07"}`, string(got))
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"string", "abc"},
		{"bool", false},
		{"int64", int64(123456789)},
		{"negative int64", int64(-42)},
		{"double", 3.25},
		{"nil", nil},
		{"timestamp", time.Date(2024, 11, 2, 8, 0, 1, 500000000, time.UTC)},
		{"list", []any{"x", int64(1), 2.5, true, nil}},
		{"nested map", map[string]any{
			"s": "v",
			"m": map[string]any{"inner": []any{int64(9)}},
		}},
		{"deep nesting", []any{[]any{[]any{[]any{map[string]any{"leaf": int64(0)}}}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.value, DecodeValue(EncodeValue(tt.value)))
		})
	}
}

func TestRoundTrip_SurvivesJSON(t *testing.T) {
	// The wire form must round-trip through actual JSON marshalling, which
	// is how it travels on requests and responses.
	doc := EncodeDocument(map[string]any{
		"title": "T",
		"year":  int64(2023),
		"tags":  []any{"a", "b"},
	})

	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	var back Document
	require.NoError(t, json.Unmarshal(raw, &back))

	assert.Equal(t, map[string]any{
		"title": "T",
		"year":  int64(2023),
		"tags":  []any{"a", "b"},
	}, DecodeDocument(back))
}

func TestDecodeValue(t *testing.T) {
	str := "s"
	integer := "12"
	overflow := "1e+21"
	double := 1.5
	boolean := true
	ts := "2023-05-01T12:30:45.123Z"
	badTS := "not-a-timestamp"

	tests := []struct {
		name  string
		input Value
		want  any
	}{
		{"empty value is nil", Value{}, nil},
		{"null", Value{NullValue: &jsonNull{}}, nil},
		{"string", Value{StringValue: &str}, "s"},
		{"integer", Value{IntegerValue: &integer}, int64(12)},
		{"integer overflow falls back to float", Value{IntegerValue: &overflow}, 1e21},
		{"double", Value{DoubleValue: &double}, 1.5},
		{"bool", Value{BooleanValue: &boolean}, true},
		{"timestamp", Value{TimestampValue: &ts},
			time.Date(2023, 5, 1, 12, 30, 45, 123000000, time.UTC)},
		{"unparseable timestamp passes through", Value{TimestampValue: &badTS}, "not-a-timestamp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeValue(tt.input))
		})
	}
}

func TestEncode_DoesNotMutateInput(t *testing.T) {
	in := map[string]any{"list": []any{int64(1), int64(2)}, "s": "x"}
	_ = EncodeFields(in)

	assert.Equal(t, map[string]any{"list": []any{int64(1), int64(2)}, "s": "x"}, in)
}

func TestDecodeInto(t *testing.T) {
	type book struct {
		Title string `firestore:"title"`
		Year  int    `firestore:"year"`
	}

	var b book
	require.NoError(t, DecodeInto(map[string]any{
		"title": "T",
		"year":  int64(2023),
	}, &b))

	assert.Equal(t, book{Title: "T", Year: 2023}, b)
}
