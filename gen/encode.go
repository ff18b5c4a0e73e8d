package gen

type encodeEmitter struct{}

func (encodeEmitter) facet() Facet { return FacetEncode }

func (encodeEmitter) requires() []string { return []string{"Encoder"} }

// emit writes EncodeTo. Arrays are written element by element; the first
// failing write ends the routine.
func (encodeEmitter) emit(w *codeWriter, c *recordContext) {
	name, recv := c.rec.Name, c.recv

	w.line("// EncodeTo encodes %s into the start of dst and reports the bytes written.", recv)
	w.open("func (%s *%s) EncodeTo(dst []byte, ctx cursor.Endian) (int, error) {", recv, name)
	w.line("off := 0")
	for _, f := range c.rec.Fields {
		elem, n, isArray := fieldShape(f)
		ref := recv + "." + f.Name
		if isArray {
			w.open("for i := 0; i < %d; i++ {", n)
			ref += "[i]"
		}
		if elem.Builtin() {
			w.open("if err := cursor.Write(dst, &off, %s, ctx); err != nil {", ref)
		} else {
			w.open("if err := cursor.WriteValue(dst, &off, &%s, ctx); err != nil {", ref)
		}
		w.line("return 0, err")
		w.close()
		if isArray {
			w.close()
		}
	}
	w.line("return off, nil")
	w.close()
}
