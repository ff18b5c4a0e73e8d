package schema

// Slot is where one field lands in the encoded record. Offset and Size are
// -1 when they depend on a type whose size is not known.
type Slot struct {
	Field  string `json:"field" yaml:"field"`
	Type   string `json:"type" yaml:"type"`
	Offset int    `json:"offset" yaml:"offset"`
	Size   int    `json:"size" yaml:"size"`
}

// SizeFunc reports the encoded size of a named type.
type SizeFunc func(Scalar) (int, bool)

// Layout places the fields of r in order. resolve may be nil, in which case
// only builtin types have a size. total is the record size when every field
// has one.
func Layout(r *Record, resolve SizeFunc) (slots []Slot, total int, ok bool) {
	slots = make([]Slot, 0, len(r.Fields))
	off, known := 0, true
	for _, f := range r.Fields {
		slot := Slot{Field: f.Name, Type: f.Type.String(), Offset: -1, Size: -1}
		if known {
			slot.Offset = off
		}
		n, sized := sizeOf(ElemOf(f.Type), resolve)
		if sized {
			if a, isArray := f.Type.(Array); isArray {
				n *= a.Len
			}
			slot.Size = n
			off += n
		} else {
			known = false
		}
		slots = append(slots, slot)
	}
	if !known {
		return slots, 0, false
	}
	return slots, off, true
}

func sizeOf(s Scalar, resolve SizeFunc) (int, bool) {
	if n, ok := s.Size(); ok {
		return n, true
	}
	if resolve == nil {
		return 0, false
	}
	return resolve(s)
}

// Sizes returns a SizeFunc that knows the records in recs, including those
// that nest each other. Cyclic records have no size.
func Sizes(recs ...*Record) SizeFunc {
	byName := make(map[string]*Record, len(recs))
	for _, r := range recs {
		byName[r.Name] = r
	}
	memo := make(map[string]int)
	visiting := make(map[string]bool)

	var resolve SizeFunc
	resolve = func(s Scalar) (int, bool) {
		name := s.Signature()
		if n, ok := memo[name]; ok {
			return n, n >= 0
		}
		r, ok := byName[name]
		if !ok || visiting[name] {
			return 0, false
		}
		visiting[name] = true
		_, total, ok := Layout(r, resolve)
		delete(visiting, name)
		if !ok {
			memo[name] = -1
			return 0, false
		}
		memo[name] = total
		return total, true
	}
	return resolve
}
