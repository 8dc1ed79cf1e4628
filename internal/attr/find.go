package attr

import (
	"reflect"
	"strings"

	"github.com/zjrosen/nacre/internal/enum"
)

// EnumProvider lets a host type expose its attribute enums explicitly,
// bypassing the reflective probe.
type EnumProvider interface {
	EnumFor(attribute string) (*enum.Enum, bool)
}

// Find probes host for the enum backing attribute. It checks the
// EnumProvider interface first, then looks for a niladic
// <CamelCase(attribute)>Enum method returning *enum.Enum. It never panics;
// any miss is (nil, false).
func Find(host any, attribute string) (*enum.Enum, bool) {
	if host == nil || attribute == "" {
		return nil, false
	}

	if provider, ok := host.(EnumProvider); ok {
		if e, ok := provider.EnumFor(attribute); ok && e != nil {
			return e, true
		}
	}

	method := reflect.ValueOf(host).MethodByName(camelCase(attribute) + "Enum")
	if !method.IsValid() {
		return nil, false
	}
	mt := method.Type()
	if mt.NumIn() != 0 || mt.NumOut() != 1 {
		return nil, false
	}
	if mt.Out(0) != reflect.TypeOf((*enum.Enum)(nil)) {
		return nil, false
	}

	out := method.Call(nil)[0]
	e, ok := out.Interface().(*enum.Enum)
	if !ok || e == nil {
		return nil, false
	}
	return e, true
}

func camelCase(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	var b strings.Builder
	for _, part := range parts {
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}
