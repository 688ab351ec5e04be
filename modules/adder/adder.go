package adder

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
)

// ErrUnknownKind is returned by Adder.Add for an operand kind it cannot add.
var ErrUnknownKind = errors.New("unknown operand kind")

// SumInts adds two integers. Overflow wraps around (two's complement).
func SumInts(a, b int64) Result {
	return Result{Variant: VariantIntInt, Sum: formatInt(a + b)}
}

// SumDoubles adds two doubles per IEEE 754.
func SumDoubles(a, b float64) Result {
	return Result{Variant: VariantDoubleDouble, Sum: formatDouble(a + b)}
}

// SumIntDouble widens a to float64 before adding.
func SumIntDouble(a int64, b float64) Result {
	return Result{Variant: VariantIntDouble, Sum: formatDouble(float64(a) + b)}
}

// SumDoubleInt widens b to float64 before adding.
func SumDoubleInt(a float64, b int64) Result {
	return Result{Variant: VariantDoubleInt, Sum: formatDouble(a + float64(b))}
}

// Adder prints one line per add call.
type Adder struct {
	mu  sync.Mutex
	out io.Writer
}

// New creates an Adder writing to w. A nil w means os.Stdout.
func New(w io.Writer) *Adder {
	if w == nil {
		w = os.Stdout
	}
	return &Adder{out: w}
}

// AddInts prints the sum of two integers.
func (a *Adder) AddInts(x, y int64) Result {
	return a.emit(SumInts(x, y))
}

// AddDoubles prints the sum of two doubles.
func (a *Adder) AddDoubles(x, y float64) Result {
	return a.emit(SumDoubles(x, y))
}

// AddIntDouble prints the sum of an integer and a double.
func (a *Adder) AddIntDouble(x int64, y float64) Result {
	return a.emit(SumIntDouble(x, y))
}

// AddDoubleInt prints the sum of a double and an integer.
func (a *Adder) AddDoubleInt(x float64, y int64) Result {
	return a.emit(SumDoubleInt(x, y))
}

// Add selects the typed variant from the declared kinds of x and y.
// Nothing is printed when either kind is unknown.
func (a *Adder) Add(x, y Operand) (Result, error) {
	switch {
	case x.Kind == KindInt && y.Kind == KindInt:
		return a.AddInts(x.Int, y.Int), nil
	case x.Kind == KindDouble && y.Kind == KindDouble:
		return a.AddDoubles(x.Double, y.Double), nil
	case x.Kind == KindInt && y.Kind == KindDouble:
		return a.AddIntDouble(x.Int, y.Double), nil
	case x.Kind == KindDouble && y.Kind == KindInt:
		return a.AddDoubleInt(x.Double, y.Int), nil
	case x.Kind != KindInt && x.Kind != KindDouble:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownKind, x.Kind)
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownKind, y.Kind)
	}
}

func (a *Adder) emit(r Result) Result {
	a.mu.Lock()
	defer a.mu.Unlock()
	// Console output cannot meaningfully fail here; a short write is dropped.
	_, _ = io.WriteString(a.out, r.Line()+"\n")
	return r
}
