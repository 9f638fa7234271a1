package style

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/cel-go/cel"
	"github.com/spf13/cast"
)

// LinearScale maps inputs[0] from [d0, d1] onto [r0, r1], clamping outside
// the domain. A degenerate domain maps everything to r0.
func LinearScale(d0, d1, r0, r1 float64) Mapping {
	return func(inputs []any) (any, error) {
		x, err := firstFloat(inputs)
		if err != nil {
			return nil, err
		}

		return r0 + unit(x, d0, d1)*(r1-r0), nil
	}
}

// ColorRamp maps inputs[0], clamped to [0,1], onto evenly spaced hex colour
// stops ("#rgb" or "#rrggbb") and returns "#rrggbb".
func ColorRamp(stops ...string) (Mapping, error) {
	if len(stops) < 2 {
		return nil, fmt.Errorf("%w: colour ramp needs at least two stops", ErrBadDescriptor)
	}
	rgb := make([][3]float64, len(stops))
	for i, s := range stops {
		c, err := parseHex(s)
		if err != nil {
			return nil, err
		}
		rgb[i] = c
	}

	return func(inputs []any) (any, error) {
		x, err := firstFloat(inputs)
		if err != nil {
			return nil, err
		}
		t := unit(x, 0, 1) * float64(len(rgb)-1)
		i := int(math.Floor(t))
		if i >= len(rgb)-1 {
			i = len(rgb) - 2
		}
		f := t - float64(i)
		var c [3]float64
		for k := range c {
			c[k] = rgb[i][k] + f*(rgb[i+1][k]-rgb[i][k])
		}

		return fmt.Sprintf("#%02x%02x%02x", round8(c[0]), round8(c[1]), round8(c[2])), nil
	}, nil
}

// MustColorRamp is ColorRamp for static stops; it panics on a malformed colour.
func MustColorRamp(stops ...string) Mapping {
	m, err := ColorRamp(stops...)
	if err != nil {
		panic(err)
	}

	return m
}

// Constant ignores its inputs and always yields v.
func Constant(v any) Mapping {
	return func([]any) (any, error) { return v, nil }
}

// Palette maps an integer category in inputs[0] onto colours, cycling when
// there are more categories than colours.
func Palette(colors ...string) Mapping {
	return func(inputs []any) (any, error) {
		if len(colors) == 0 {
			return nil, fmt.Errorf("%w: empty palette", ErrBadDescriptor)
		}
		if len(inputs) == 0 {
			return nil, fmt.Errorf("%w: no input", ErrBadInput)
		}
		i, err := cast.ToIntE(inputs[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadInput, err)
		}
		i %= len(colors)
		if i < 0 {
			i += len(colors)
		}

		return colors[i], nil
	}
}

// Ratio feeds |inputs[0]| / |inputs[1]| into next, or 0 when the
// denominator is 0. It pairs an entity result with a graph-level maximum.
func Ratio(next Mapping) Mapping {
	return func(inputs []any) (any, error) {
		if len(inputs) < 2 {
			return nil, fmt.Errorf("%w: ratio needs two inputs", ErrBadInput)
		}
		num, err := firstFloat(inputs[:1])
		if err != nil {
			return nil, err
		}
		den, err := firstFloat(inputs[1:2])
		if err != nil {
			return nil, err
		}
		x := 0.0
		if den != 0 {
			x = math.Abs(num) / math.Abs(den)
		}

		return next([]any{x})
	}
}

// CELMapping compiles a CEL expression into a Mapping. The expression sees
// `value` (the first input, or null without inputs) and `inputs` (all inputs).
func CELMapping(expr string) (Mapping, error) {
	env, err := cel.NewEnv(
		cel.Variable("value", cel.DynType),
		cel.Variable("inputs", cel.ListType(cel.DynType)),
	)
	if err != nil {
		return nil, fmt.Errorf("style: cel env: %w", err)
	}
	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("%w: cel %q: %w", ErrBadDescriptor, expr, issues.Err())
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("%w: cel %q: %w", ErrBadDescriptor, expr, err)
	}

	return func(inputs []any) (any, error) {
		var value any
		if len(inputs) > 0 {
			value = inputs[0]
		}
		if inputs == nil {
			inputs = []any{}
		}
		out, _, err := prg.Eval(map[string]any{"value": value, "inputs": inputs})
		if err != nil {
			return nil, fmt.Errorf("%w: cel %q: %w", ErrBadInput, expr, err)
		}

		return out.Value(), nil
	}, nil
}

func firstFloat(inputs []any) (float64, error) {
	if len(inputs) == 0 {
		return 0, fmt.Errorf("%w: no input", ErrBadInput)
	}
	x, err := cast.ToFloat64E(inputs[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBadInput, err)
	}
	if math.IsNaN(x) {
		return 0, fmt.Errorf("%w: NaN", ErrBadInput)
	}

	return x, nil
}

// unit rescales x from [lo, hi] into [0, 1].
func unit(x, lo, hi float64) float64 {
	if hi == lo {
		return 0
	}
	t := (x - lo) / (hi - lo)

	return math.Max(0, math.Min(1, t))
}

func parseHex(s string) ([3]float64, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return [3]float64{}, fmt.Errorf("%w: colour %q", ErrBadDescriptor, s)
	}
	var c [3]float64
	for k := 0; k < 3; k++ {
		v, err := strconv.ParseUint(h[2*k:2*k+2], 16, 8)
		if err != nil {
			return [3]float64{}, fmt.Errorf("%w: colour %q", ErrBadDescriptor, s)
		}
		c[k] = float64(v)
	}

	return c, nil
}

func round8(x float64) uint8 {
	return uint8(math.Max(0, math.Min(255, math.Round(x))))
}
