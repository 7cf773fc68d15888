package bina

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-reflect"
	"github.com/oarkflow/date"
)

// Decode copies the final variable environment into v, which must be a
// non-nil pointer to a struct or map. Struct fields are matched by their
// json tag when present, otherwise by field name. String variables decode
// into time.Time fields via date.Parse.
func Decode(env *Environment, v any) error {
	dest := reflect.ValueOf(v)
	if dest.Kind() != reflect.Ptr || dest.IsNil() {
		return errors.New("v must be a non-nil pointer")
	}
	dest = dest.Elem()
	switch dest.Kind() {
	case reflect.Map:
		if dest.IsNil() {
			dest.Set(reflect.MakeMap(dest.Type()))
		}
		for name, val := range env.vars {
			destVal := reflect.New(dest.Type().Elem()).Elem()
			if err := assignValue(val, destVal); err != nil {
				return fmt.Errorf("variable %s: %w", name, err)
			}
			dest.SetMapIndex(reflect.ValueOf(name), destVal)
		}
	case reflect.Struct:
		typ := dest.Type()
		for i := 0; i < typ.NumField(); i++ {
			field := typ.Field(i)
			if field.PkgPath != "" {
				continue
			}
			name := field.Name
			if tag := field.Tag.Get("json"); tag != "" {
				parts := strings.Split(tag, ",")
				if parts[0] != "" {
					name = parts[0]
				}
			}
			val, ok := env.Lookup(name)
			if !ok {
				continue
			}
			if err := assignValue(val, dest.Field(i)); err != nil {
				return fmt.Errorf("field %s: %w", field.Name, err)
			}
		}
	default:
		return fmt.Errorf("unsupported destination kind %s", dest.Kind())
	}
	return nil
}

func assignValue(src Value, dest reflect.Value) error {
	if !dest.IsValid() {
		return errors.New("invalid destination")
	}
	if dest.Kind() == reflect.Ptr {
		if dest.IsNil() {
			dest.Set(reflect.New(dest.Type().Elem()))
		}
		return assignValue(src, dest.Elem())
	}
	if dest.Kind() == reflect.Struct && dest.Type() == reflect.TypeOf(time.Time{}) {
		if src.Kind != StringValue {
			return fmt.Errorf("expected string for time conversion but got %s", src.Kind)
		}
		t, err := date.Parse(src.Str)
		if err != nil {
			return fmt.Errorf("cannot parse time: %v", err)
		}
		dest.Set(reflect.ValueOf(t))
		return nil
	}
	switch dest.Kind() {
	case reflect.Interface:
		dest.Set(reflect.ValueOf(src.Interface()))
	case reflect.String:
		if src.Kind != StringValue {
			return fmt.Errorf("cannot convert %s to string", src.Kind)
		}
		dest.SetString(src.Str)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if src.Kind != NumberValue {
			return fmt.Errorf("cannot convert %s to int", src.Kind)
		}
		dest.SetInt(src.Num)
	case reflect.Float32, reflect.Float64:
		if src.Kind != NumberValue {
			return fmt.Errorf("cannot convert %s to float", src.Kind)
		}
		dest.SetFloat(float64(src.Num))
	case reflect.Bool:
		if src.Kind != BooleanValue {
			return fmt.Errorf("cannot convert %s to bool", src.Kind)
		}
		dest.SetBool(src.Bool)
	default:
		return fmt.Errorf("unsupported destination type: %s", dest.Kind())
	}
	return nil
}
