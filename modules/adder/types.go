package adder

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind is the declared representation of an operand.
type Kind string

// Supported operand kinds.
const (
	KindInt    Kind = "int"
	KindDouble Kind = "double"
)

// Operand is a numeric value tagged with its declared kind.
// Only the field selected by Kind is meaningful.
type Operand struct {
	Kind   Kind
	Int    int64
	Double float64
}

// operandWire carries Double as text so NaN and ±Inf survive encoding/json.
type operandWire struct {
	Kind   Kind   `json:"kind"`
	Int    int64  `json:"int,omitempty"`
	Double string `json:"double,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (o Operand) MarshalJSON() ([]byte, error) {
	w := operandWire{Kind: o.Kind, Int: o.Int}
	if o.Kind == KindDouble {
		w.Double = strconv.FormatFloat(o.Double, 'g', -1, 64)
	}
	return json.Marshal(w)
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Operand) UnmarshalJSON(data []byte) error {
	var w operandWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*o = Operand{Kind: w.Kind, Int: w.Int}
	if w.Double != "" {
		v, err := strconv.ParseFloat(w.Double, 64)
		if err != nil {
			return fmt.Errorf("invalid double operand %q: %w", w.Double, err)
		}
		o.Double = v
	}
	return nil
}

// IntOperand tags an integer operand.
func IntOperand(v int64) Operand {
	return Operand{Kind: KindInt, Int: v}
}

// DoubleOperand tags a floating-point operand.
func DoubleOperand(v float64) Operand {
	return Operand{Kind: KindDouble, Double: v}
}

// Variant identifies which add variant ran.
type Variant string

// The four add variants, keyed by operand kinds.
const (
	VariantIntInt       Variant = "int/int"
	VariantDoubleDouble Variant = "double/double"
	VariantIntDouble    Variant = "int/double"
	VariantDoubleInt    Variant = "double/int"
)

var labels = map[Variant]string{
	VariantIntInt:       "Addition of 2 int values",
	VariantDoubleDouble: "Addition of 2 double values",
	VariantIntDouble:    "Addition of int and double values",
	VariantDoubleInt:    "Addition of double and int values",
}

// Label returns the output label of the variant.
func (v Variant) Label() string {
	return labels[v]
}

// Result is the rendered outcome of one add call.
type Result struct {
	Variant Variant
	Sum     string
}

// Line renders the result as "{label}: {sum}".
func (r Result) Line() string {
	return r.Variant.Label() + ": " + r.Sum
}

// AddRequest is the request for the add service.
type AddRequest struct {
	RequestID string  `json:"request_id,omitempty"`
	A         Operand `json:"a"`
	B         Operand `json:"b"`
}

// AddResponse is the response from the add service.
type AddResponse struct {
	RequestID string  `json:"request_id,omitempty"`
	Variant   Variant `json:"variant,omitempty"`
	Sum       string  `json:"sum,omitempty"`
	Line      string  `json:"line,omitempty"`
	Error     string  `json:"error,omitempty"`
}

// Call is one entry of a call sequence.
type Call struct {
	A Operand
	B Operand
}

// Sequence is the fixed call order run by the entry point.
var Sequence = []Call{
	{A: IntOperand(10), B: IntOperand(20)},
	{A: DoubleOperand(20.0), B: DoubleOperand(20.5)},
	{A: IntOperand(10), B: DoubleOperand(25.5)},
	{A: DoubleOperand(20.5), B: IntOperand(15)},
}
