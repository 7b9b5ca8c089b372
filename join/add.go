package join

import (
	"fmt"

	"github.com/katalvlaran/cmcutils/cfgtree"
)

// add combines two colliding leaves with "+":
//
//	int/bool + int/bool → int (bools count as 0/1)
//	any numeric + float → float
//	string + string     → concatenation
//	seq + seq           → concatenation (new slice)
//
// Anything else, including null operands, is ErrUnsupportedOperand.
func add(a, b cfgtree.Value) (cfgtree.Value, error) {
	if ai, ok := intLike(a); ok {
		if bi, ok := intLike(b); ok {
			return cfgtree.Int(ai + bi), nil
		}
	}
	if isNumeric(a) && isNumeric(b) {
		af, _ := a.Number()
		bf, _ := b.Number()
		return cfgtree.Float(af + bf), nil
	}
	if as, ok := a.AsString(); ok {
		if bs, ok := b.AsString(); ok {
			return cfgtree.String(as + bs), nil
		}
	}
	if aq, ok := a.AsSeq(); ok {
		if bq, ok := b.AsSeq(); ok {
			out := make([]cfgtree.Value, 0, len(aq)+len(bq))
			out = append(out, aq...)
			out = append(out, bq...)
			return cfgtree.Seq(out...), nil
		}
	}
	return cfgtree.Null(), fmt.Errorf("%s + %s: %w", a.Kind(), b.Kind(), ErrUnsupportedOperand)
}

func intLike(v cfgtree.Value) (int64, bool) {
	if i, ok := v.AsInt(); ok {
		return i, true
	}
	if b, ok := v.AsBool(); ok {
		if b {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

func isNumeric(v cfgtree.Value) bool {
	switch v.Kind() {
	case cfgtree.KindBool, cfgtree.KindInt, cfgtree.KindFloat:
		return true
	}
	return false
}
