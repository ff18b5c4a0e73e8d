package transcoder

import (
	"reflect"
	"sync"

	"github.com/wippyai/recordgen/errors"
	"github.com/wippyai/recordgen/schema"
)

// Compiler builds and caches Plans.
type Compiler struct {
	cache sync.Map // reflect.Type -> *Plan
}

func NewCompiler() *Compiler {
	return &Compiler{}
}

// Compile returns the Plan for goType, which must be a named struct type or
// a pointer to one.
func (c *Compiler) Compile(goType reflect.Type) (*Plan, error) {
	if goType == nil {
		return nil, errors.InvalidInput(errors.PhaseGenerate, "Go type cannot be nil")
	}
	if goType.Kind() == reflect.Ptr {
		goType = goType.Elem()
	}

	if cached, ok := c.cache.Load(goType); ok {
		return cached.(*Plan), nil
	}

	p, err := c.compile(goType)
	if err != nil {
		return nil, err
	}
	actual, _ := c.cache.LoadOrStore(goType, p)
	return actual.(*Plan), nil
}

func (c *Compiler) compile(goType reflect.Type) (*Plan, error) {
	rec, err := schema.FromType(goType)
	if err != nil {
		return nil, err
	}

	p := &Plan{goType: goType, record: rec, steps: make([]step, 0, len(rec.Fields))}
	for i, f := range rec.Fields {
		sf := goType.Field(i)
		s := step{name: f.Name, index: i}

		elemType := sf.Type
		if a, ok := f.Type.(schema.Array); ok {
			s.array = true
			s.count = a.Len
			elemType = sf.Type.Elem()
		}

		switch {
		case schema.ElemOf(f.Type).Builtin() && elemType.PkgPath() == "":
		case elemType.Kind() == reflect.Struct:
			sub, err := c.Compile(elemType)
			if err != nil {
				return nil, err
			}
			s.sub = sub
		default:
			return nil, errors.UnsupportedField(rec.Name, f.Name, elemType.String(),
				"named non-struct types carry their own codec and cannot be interpreted")
		}
		p.steps = append(p.steps, s)
	}
	return p, nil
}
