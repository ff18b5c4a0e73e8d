package gen

import "strconv"

type sizeEmitter struct{}

func (sizeEmitter) facet() Facet { return FacetSize }

func (sizeEmitter) requires() []string { return []string{"Sizer"} }

// emit writes SizeWith as the sum of per-field sizes. An array contributes
// its length times the element size.
func (sizeEmitter) emit(w *codeWriter, c *recordContext) {
	name := c.rec.Name

	w.line("// SizeWith reports the encoded size of a %s under ctx.", name)
	w.open("func (%s) SizeWith(ctx cursor.Endian) int {", name)
	if len(c.rec.Fields) == 0 {
		w.line("return 0")
		w.close()
		return
	}
	for i, f := range c.rec.Fields {
		elem, n, isArray := fieldShape(f)
		term := sizeExpr(elem)
		if isArray {
			term = strconv.Itoa(n) + "*" + term
		}
		if i < len(c.rec.Fields)-1 {
			term += " +"
		}
		if i == 0 {
			w.line("return %s", term)
		} else {
			w.line("\t%s", term)
		}
	}
	w.close()
}
