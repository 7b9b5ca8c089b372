package kwargs

import (
	"fmt"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"
)

// Args is a bag of named values.
type Args map[string]any

// Signature lists the parameter names a consumer accepts.
type Signature interface {
	Params() []string
}

// ParamList is a Signature backed by a plain list of names.
type ParamList []string

// Params implements Signature.
func (p ParamList) Params() []string { return p }

// Params declares a signature by name.
func Params(names ...string) ParamList { return ParamList(names) }

// Validator is implemented by configuration structs that check themselves
// once decoded.
type Validator interface {
	Validate() error
}

// Filter returns the entries of args whose key is one of sig's parameter
// names. Nothing is invoked and args is not modified.
func Filter(sig Signature, args Args) Args {
	out := make(Args)
	if sig == nil {
		return out
	}
	for _, name := range sig.Params() {
		if v, ok := args[name]; ok {
			out[name] = v
		}
	}
	return out
}

// StructParams derives a signature from the exported fields of a struct:
// the yaml tag name when present, otherwise the lower-cased field name.
// Fields tagged `yaml:"-"` are skipped; inline structs contribute their
// own fields.
func StructParams(v any) (ParamList, error) {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%T: %w", v, ErrNotStruct)
	}
	return structParams(t), nil
}

func structParams(t reflect.Type) ParamList {
	var names ParamList
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, opts, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			continue
		}
		if strings.Contains(opts, "inline") && f.Type.Kind() == reflect.Struct {
			names = append(names, structParams(f.Type)...)
			continue
		}
		if name == "" {
			name = strings.ToLower(f.Name)
		}
		names = append(names, name)
	}
	return names
}

// Bind filters args against dst's fields, decodes the survivors into dst
// (a non-nil pointer to struct) and then runs dst's Validate method when it
// has one. Fields not present in args keep their current values, so dst
// can be pre-filled with defaults.
func Bind(args Args, dst any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("%T: %w", dst, ErrNotStruct)
	}
	sig, err := StructParams(dst)
	if err != nil {
		return err
	}

	raw, err := yaml.Marshal(map[string]any(Filter(sig, args)))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if err := yaml.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}

	if v, ok := dst.(Validator); ok {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}
	return nil
}
