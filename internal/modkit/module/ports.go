package module

import "reflect"

// PortsOf pulls an interface T out of a module's Ports() bundle
// it returns ok=false if neither the bundle nor one of its exported fields implements T
func PortsOf[T any](m Module) (t T, ok bool) {
	if m == nil {
		return t, false
	}
	p := m.Ports()
	if p == nil {
		return t, false
	}
	if v, ok2 := p.(T); ok2 {
		return v, true
	}
	rv := reflect.ValueOf(p)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return t, false
		}
		rv = rv.Elem()
	}
	// only walk exported fields of structs
	if rv.Kind() == reflect.Struct {
		for i := 0; i < rv.NumField(); i++ {
			f := rv.Field(i)
			if !f.CanInterface() {
				continue
			}
			if v, ok2 := f.Interface().(T); ok2 {
				return v, true
			}
		}
	}
	return t, false
}

// MustPortsOf is a convenience that panics with a friendly message
func MustPortsOf[T any](m Module) T {
	if v, ok := PortsOf[T](m); ok {
		return v
	}
	panic("module: requested port not found on module " + m.Name())
}

// Collect returns the T port of every module that has one, in module order
func Collect[T any](mods ...Module) []T {
	var out []T
	for _, m := range mods {
		if v, ok := PortsOf[T](m); ok {
			out = append(out, v)
		}
	}
	return out
}
