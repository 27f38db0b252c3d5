// Package query defines a backend-agnostic predicate AST for catalog search.
// Match-object builders produce Node trees; the db driver compiles them into
// the store's FT query syntax.
package query

// Node is a single predicate in a search query tree.
type Node interface {
	isNode()
}

// All matches every document in the collection.
type All struct{}

// Tag is an exact match on a TAG field. When Prefix is set, the value is
// matched as a prefix instead (used for wildcard mime-type filters).
type Tag struct {
	Field  string
	Value  string
	Prefix bool
}

// MatchMode selects how a Text node matches terms.
type MatchMode int

// Text match modes.
const (
	// Infix matches the term anywhere inside indexed tokens (substring-style).
	Infix MatchMode = iota
	// Fuzzy matches within a bounded edit distance of the term.
	Fuzzy
	// Prefix matches tokens starting with the term (autocomplete).
	Prefix
)

// Text is a free-text match over one or more TEXT fields.
// Boost (when > 0) weights the clause's contribution to the relevance score.
type Text struct {
	Fields []string
	Term   string
	Mode   MatchMode
	Boost  float64
}

// And requires all children to match.
type And struct {
	Children []Node
}

// Or requires at least one child to match.
type Or struct {
	Children []Node
}

// Not inverts its child.
type Not struct {
	Child Node
}

func (All) isNode()  {}
func (Tag) isNode()  {}
func (Text) isNode() {}
func (And) isNode()  {}
func (Or) isNode()   {}
func (Not) isNode()  {}

// AndOf combines nodes with logical AND. Nil children and All nodes are
// dropped; zero remaining children yields All, a single child is returned
// bare (no redundant wrapping).
func AndOf(nodes ...Node) Node {
	kept := compact(nodes)
	switch len(kept) {
	case 0:
		return All{}
	case 1:
		return kept[0]
	default:
		return And{Children: kept}
	}
}

// OrOf combines nodes with logical OR, with the same collapse rules as AndOf.
func OrOf(nodes ...Node) Node {
	kept := compact(nodes)
	switch len(kept) {
	case 0:
		return All{}
	case 1:
		return kept[0]
	default:
		return Or{Children: kept}
	}
}

// IsAll reports whether the node matches everything (empty predicate).
func IsAll(n Node) bool {
	if n == nil {
		return true
	}
	_, ok := n.(All)
	return ok
}

func compact(nodes []Node) []Node {
	kept := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if n == nil || IsAll(n) {
			continue
		}
		kept = append(kept, n)
	}
	return kept
}
