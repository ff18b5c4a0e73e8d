package gen

type decodeEmitter struct{}

func (decodeEmitter) facet() Facet { return FacetDecode }

func (decodeEmitter) requires() []string { return []string{"Decoder"} }

// emit writes DecodeFrom. Fields decode in declaration order into a local
// value that is assigned to the receiver only after every field succeeded.
// Fixed arrays decode with a single bulk call.
func (decodeEmitter) emit(w *codeWriter, c *recordContext) {
	name, recv := c.rec.Name, c.recv

	w.line("// DecodeFrom decodes a %s from the start of src and reports the bytes consumed.", name)
	w.line("// %s is left unchanged when decoding fails.", recv)
	w.open("func (%s *%s) DecodeFrom(src []byte, ctx cursor.Endian) (int, error) {", recv, name)
	w.line("var v %s", name)
	if len(c.rec.Fields) > 0 {
		w.line("var err error")
	}
	w.line("off := 0")
	for _, f := range c.rec.Fields {
		elem, _, isArray := fieldShape(f)
		switch {
		case isArray && elem.Builtin():
			w.open("if err = cursor.ReadSlice(src, &off, v.%s[:], ctx); err != nil {", f.Name)
		case isArray:
			w.open("if err = cursor.ReadValues(src, &off, v.%s[:], ctx); err != nil {", f.Name)
		case elem.Builtin():
			w.open("if v.%s, err = cursor.Read[%s](src, &off, ctx); err != nil {", f.Name, elem)
		default:
			w.open("if err = cursor.ReadValue(src, &off, &v.%s, ctx); err != nil {", f.Name)
		}
		w.line("return 0, err")
		w.close()
	}
	w.line("*%s = v", recv)
	w.line("return off, nil")
	w.close()
}
