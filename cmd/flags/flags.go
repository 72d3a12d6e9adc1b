// SPDX-License-Identifier: MIT

// Package flags holds pflag.Value implementations shared by the commands.
package flags

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/numlab/vector"
)

// functions is the fixed table of named real functions.
var functions = map[string]vector.UnaryFunc{
	"sin":      math.Sin,
	"cos":      math.Cos,
	"tan":      math.Tan,
	"exp":      math.Exp,
	"square":   func(x float64) float64 { return x * x },
	"identity": func(x float64) float64 { return x },
}

// FunctionNames returns the names accepted by FuncFlag, sorted.
func FunctionNames() []string {
	names := make([]string, 0, len(functions))
	for n := range functions {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}

// FuncFlag selects a function from the fixed table.
type FuncFlag struct {
	name string
}

var _ pflag.Value = (*FuncFlag)(nil)

// NewFuncFlag returns a flag preset to name, which must be in the table.
func NewFuncFlag(name string) FuncFlag {
	if _, ok := functions[name]; !ok {
		panic(fmt.Sprintf("flags: unknown default function %q", name))
	}

	return FuncFlag{name: name}
}

func (f FuncFlag) String() string {
	return f.name
}

// Set implements pflag.Value.
func (f *FuncFlag) Set(v string) error {
	if _, ok := functions[v]; !ok {
		return fmt.Errorf("unknown function %q (want one of %s)", v, strings.Join(FunctionNames(), ", "))
	}
	f.name = v

	return nil
}

// Type implements pflag.Value.
func (f FuncFlag) Type() string {
	return "func"
}

// Value returns the selected function.
func (f FuncFlag) Value() vector.UnaryFunc {
	return functions[f.name]
}

// FloatFlag is a float64 flag that also accepts multiples of π, written
// "pi", "2pi", "-0.5pi" or "π".
type FloatFlag float64

var _ pflag.Value = (*FloatFlag)(nil)

func (f FloatFlag) String() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 64)
}

// Set implements pflag.Value.
func (f *FloatFlag) Set(v string) error {
	x, err := ParseFloat(v)
	if err != nil {
		return err
	}
	*f = FloatFlag(x)

	return nil
}

// Type implements pflag.Value.
func (f FloatFlag) Type() string {
	return "float|Npi"
}

// Value returns the flag value.
func (f FloatFlag) Value() float64 {
	return float64(f)
}

// ParseFloat parses a plain float or a multiple of π.
func ParseFloat(v string) (float64, error) {
	s := strings.TrimSpace(strings.ToLower(v))
	for _, suffix := range []string{"pi", "π"} {
		if !strings.HasSuffix(s, suffix) {
			continue
		}
		coef := strings.TrimSuffix(s, suffix)
		switch coef {
		case "", "+":
			return math.Pi, nil
		case "-":
			return -math.Pi, nil
		}
		c, err := strconv.ParseFloat(coef, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid multiple of pi %q", v)
		}

		return c * math.Pi, nil
	}
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", v)
	}

	return x, nil
}

// EnumFlag accepts one of a fixed set of strings.
type EnumFlag struct {
	allowed []string
	value   string
}

var _ pflag.Value = (*EnumFlag)(nil)

// NewEnumFlag returns a flag restricted to allowed, preset to def.
func NewEnumFlag(def string, allowed ...string) EnumFlag {
	return EnumFlag{allowed: allowed, value: def}
}

func (e EnumFlag) String() string {
	return e.value
}

// Set implements pflag.Value.
func (e *EnumFlag) Set(v string) error {
	for _, a := range e.allowed {
		if v == a {
			e.value = v

			return nil
		}
	}

	return fmt.Errorf("invalid value %q (want one of %s)", v, strings.Join(e.allowed, ", "))
}

// Type implements pflag.Value.
func (e EnumFlag) Type() string {
	return strings.Join(e.allowed, "|")
}

// Value returns the selected string.
func (e EnumFlag) Value() string {
	return e.value
}
