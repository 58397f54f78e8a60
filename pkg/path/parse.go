package path

import "strconv"

// Parse builds a Path from its string form.
//
// The grammar is stable: segments separated by ".", each segment a name
// optionally followed by bracketed element positions. Bracket content is
// read as a list index when it parses as an integer and as a map key
// otherwise; an empty bracket pair denotes an element whose position is
// unknown. Names carry no escaping and must not contain ".", "[" or "]".
//
// The empty expression denotes the graph root and yields the root path.
// Any other expression that does not conform to the grammar, or that
// yields zero segments, fails with a *SyntaxError.
func Parse(expr string) (*Path, error) {
	if expr == "" {
		return Create(), nil
	}

	p := &Path{}
	i := 0
	afterDot := false
	for {
		start := i
		for i < len(expr) && expr[i] != '.' && expr[i] != '[' && expr[i] != ']' {
			i++
		}
		name := expr[start:i]
		if name == "" {
			// A bare bracket segment is only allowed at the very start
			// of the expression, where it indexes the graph root.
			if afterDot || i >= len(expr) || expr[i] != '[' {
				return nil, &SyntaxError{Expr: expr, Pos: i, Msg: "expected property name"}
			}
		} else {
			p.AddProperty(name)
		}

		for i < len(expr) && expr[i] == '[' {
			i++
			start = i
			for i < len(expr) && expr[i] != ']' {
				if expr[i] == '[' {
					return nil, &SyntaxError{Expr: expr, Pos: i, Msg: "nested '[' in element position"}
				}
				i++
			}
			if i >= len(expr) {
				return nil, &SyntaxError{Expr: expr, Pos: i, Msg: "unterminated '['"}
			}
			content := expr[start:i]
			i++
			switch {
			case content == "":
				p.AddNode(NewIterableElementNode())
			default:
				if index, err := strconv.Atoi(content); err == nil {
					p.AddNode(NodeAtIndex(index))
				} else {
					p.AddNode(NodeAtKey(content))
				}
			}
		}

		if i >= len(expr) {
			break
		}
		if expr[i] != '.' {
			return nil, &SyntaxError{Expr: expr, Pos: i, Msg: "expected '.' or '['"}
		}
		i++
		afterDot = true
	}

	if len(p.nodes) == 0 {
		return nil, &SyntaxError{Expr: expr, Pos: 0, Msg: "expression yields no path segments"}
	}
	return p, nil
}
