package firestore

// Wire types for the Firestore REST API (v1). Every field value travels as a
// single-key typed wrapper object; a document is a named map of those
// wrappers plus server-assigned timestamps.
//
// See https://firestore.googleapis.com/v1 documents resource.

// Value is the typed-wrapper form of a single field value. Exactly one of the
// fields is set on any value produced by this package.
type Value struct {
	StringValue    *string     `json:"stringValue,omitempty"`
	IntegerValue   *string     `json:"integerValue,omitempty"`
	DoubleValue    *float64    `json:"doubleValue,omitempty"`
	BooleanValue   *bool       `json:"booleanValue,omitempty"`
	TimestampValue *string     `json:"timestampValue,omitempty"`
	NullValue      *jsonNull   `json:"nullValue,omitempty"`
	ArrayValue     *ArrayValue `json:"arrayValue,omitempty"`
	MapValue       *MapValue   `json:"mapValue,omitempty"`
}

// jsonNull marshals as a literal JSON null. The API requires null fields to
// be sent as {"nullValue": null}, which a plain omitempty pointer cannot
// express.
type jsonNull struct{}

func (jsonNull) MarshalJSON() ([]byte, error) { return []byte("null"), nil }
func (*jsonNull) UnmarshalJSON([]byte) error { return nil }

// ArrayValue is the wire form of an ordered list of values.
type ArrayValue struct {
	Values []Value `json:"values"`
}

// MapValue is the wire form of a nested field map.
type MapValue struct {
	Fields map[string]Value `json:"fields"`
}

// Document is the wire form of a single document. Name, CreateTime and
// UpdateTime are assigned by the server and absent on request bodies.
type Document struct {
	Name       string           `json:"name,omitempty"`
	Fields     map[string]Value `json:"fields"`
	CreateTime string           `json:"createTime,omitempty"`
	UpdateTime string           `json:"updateTime,omitempty"`
}

// listDocumentsResponse is the body of a collection GET. The documents key is
// omitted entirely for an empty collection.
type listDocumentsResponse struct {
	Documents []Document `json:"documents"`
}

// accountInfoResponse is the body returned by the identity toolkit
// getAccountInfo endpoint.
type accountInfoResponse struct {
	Users []accountInfoUser `json:"users"`
}

type accountInfoUser struct {
	LocalID string `json:"localId"`
}
