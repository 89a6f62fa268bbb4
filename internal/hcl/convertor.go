package hcl

import (
	"fmt"
	"math/big"

	"github.com/zclconf/go-cty/cty"
)

// Converter turns cty values into plain Go values: string, bool, int64,
// float64, []any and map[string]any.
type Converter struct{}

// NewConverter creates a new HCL converter.
func NewConverter() *Converter {
	return &Converter{}
}

// ToGoValue converts val. Null values become nil; unknown values are an
// error because project files are evaluated without variables.
func (c *Converter) ToGoValue(val cty.Value) (any, error) {
	if val.IsNull() {
		return nil, nil
	}
	if !val.IsWhollyKnown() {
		return nil, fmt.Errorf("value of type %s is not known", val.Type().FriendlyName())
	}

	ty := val.Type()
	switch {
	case ty == cty.String:
		return val.AsString(), nil
	case ty == cty.Bool:
		return val.True(), nil
	case ty == cty.Number:
		bf := val.AsBigFloat()
		if bf.IsInt() {
			if i, acc := bf.Int64(); acc == big.Exact {
				return i, nil
			}
		}
		f, _ := bf.Float64()
		return f, nil
	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		out := []any{}
		for it := val.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			v, err := c.ToGoValue(elem)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case ty.IsMapType() || ty.IsObjectType():
		out := map[string]any{}
		for it := val.ElementIterator(); it.Next(); {
			key, elem := it.Element()
			v, err := c.ToGoValue(elem)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key.AsString(), err)
			}
			out[key.AsString()] = v
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported value type %s", ty.FriendlyName())
	}
}

// ToOptions converts an object or map value into an options mapping.
func (c *Converter) ToOptions(val cty.Value) (map[string]any, error) {
	if val.IsNull() {
		return map[string]any{}, nil
	}
	ty := val.Type()
	if !ty.IsObjectType() && !ty.IsMapType() {
		return nil, fmt.Errorf("compiler_options must be an object, got %s", ty.FriendlyName())
	}
	v, err := c.ToGoValue(val)
	if err != nil {
		return nil, err
	}
	return v.(map[string]any), nil
}
