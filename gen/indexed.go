package gen

// The indexed pair assumes the caller has checked the buffer against
// SizeWith; out-of-range access panics like any slice index.

type loadEmitter struct{}

func (loadEmitter) facet() Facet { return FacetLoad }

func (loadEmitter) requires() []string { return []string{"Loader", "Sizer"} }

func (loadEmitter) emit(w *codeWriter, c *recordContext) {
	name, recv := c.rec.Name, c.recv

	w.line("// LoadFrom decodes %s from src without bounds checks.", recv)
	w.open("func (%s *%s) LoadFrom(src []byte, ctx cursor.Endian) {", recv, name)
	emitIndexed(w, c, func(elem string, builtin bool, ref string) {
		if builtin {
			w.line("%s = cursor.Get[%s](src, off, ctx)", ref, elem)
		} else {
			w.line("%s.LoadFrom(src[off:], ctx)", ref)
		}
	})
	w.close()
}

type storeEmitter struct{}

func (storeEmitter) facet() Facet { return FacetStore }

func (storeEmitter) requires() []string { return []string{"Storer", "Sizer"} }

func (storeEmitter) emit(w *codeWriter, c *recordContext) {
	name, recv := c.rec.Name, c.recv

	w.line("// StoreTo encodes %s into dst without bounds checks.", recv)
	w.open("func (%s *%s) StoreTo(dst []byte, ctx cursor.Endian) {", recv, name)
	emitIndexed(w, c, func(elem string, builtin bool, ref string) {
		if builtin {
			w.line("cursor.Put(dst, off, %s, ctx)", ref)
		} else {
			w.line("%s.StoreTo(dst[off:], ctx)", ref)
		}
	})
	w.close()
}

// emitIndexed walks the fields in order, calling access for each element
// and advancing off by the element size after it.
func emitIndexed(w *codeWriter, c *recordContext, access func(elem string, builtin bool, ref string)) {
	if len(c.rec.Fields) == 0 {
		return
	}
	w.line("off := 0")
	for _, f := range c.rec.Fields {
		elem, n, isArray := fieldShape(f)
		ref := c.recv + "." + f.Name
		if isArray {
			w.open("for i := 0; i < %d; i++ {", n)
			ref += "[i]"
		}
		access(elem.String(), elem.Builtin(), ref)
		w.line("off += %s", sizeExpr(elem))
		if isArray {
			w.close()
		}
	}
}
