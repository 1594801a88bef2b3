// File: lixenwraith/flags/struct.go
package flags

import (
	"fmt"
	"reflect"
	"strings"
	"time"
)

// FromStruct registers one flag per annotated field of a struct,
// binding each flag to the field's address with the field's current
// value as the default. Field tags:
//
//	Verbose bool      `flag:"verbose,v" desc:"Enable verbose output"`
//	Host    string    `flag:"host" desc:"Host to connect to"`
//	Port    int       `flag:"port,p" desc:"Port to connect to"`
//	Started time.Time `flag:"started" desc:"Window start"`
//
// Fields without a flag tag (or tagged "-") are skipped. Supported field
// types are bool, string, int, float32, float64, and time.Time; anything
// else is an error. Bool fields are reset to false at registration, like
// BoolVar.
func (fs *FlagSet) FromStruct(target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("FromStruct requires a non-nil struct pointer, got %T", target)
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("FromStruct requires a struct pointer, got %T", target)
	}

	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		tag := field.Tag.Get("flag")
		if tag == "" || tag == "-" {
			continue
		}

		name := tag
		var short byte
		if j := strings.IndexByte(tag, ','); j >= 0 {
			name = tag[:j]
			if rest := tag[j+1:]; rest != "" {
				short = rest[0]
			}
		}
		if name == "" {
			name = strings.ToLower(field.Name)
		}
		desc := field.Tag.Get("desc")

		switch dst := rv.Field(i).Addr().Interface().(type) {
		case *bool:
			fs.BoolVar(dst, name, short, desc)
		case *string:
			fs.StringVar(dst, name, short, *dst, desc)
		case *int:
			fs.IntVar(dst, name, short, *dst, desc)
		case *float32:
			fs.Float32Var(dst, name, short, *dst, desc)
		case *float64:
			fs.Float64Var(dst, name, short, *dst, desc)
		case *time.Time:
			fs.TimeVar(dst, name, short, *dst, desc)
		default:
			return fmt.Errorf("unsupported field type %s for flag %q", field.Type, name)
		}
	}

	return nil
}
