package treebank

import (
	"fmt"
	"strings"
)

// ParseBracket reads a tree in bracketed constituency notation, e.g.
//
//	(S (NP (DT The) (NN cat)) (VP (VBZ sits)))
//
// Internal nodes are written as "(LABEL child...)"; bare tokens are leaves.
// An extra outer wrapper with an empty label, as emitted by some parsers
// ("( (S ...) )"), is unwrapped when it holds exactly one child.
func ParseBracket(input string) (*ParseTree, error) {
	tokens := tokenizeBrackets(input)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("empty tree string")
	}

	tree, rest, err := parseNode(tokens)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("trailing input after tree: %q", strings.Join(rest, " "))
	}

	// Unwrap a label-less singleton wrapper.
	for tree.Label == "" && len(tree.Children) == 1 {
		tree = tree.Children[0]
	}
	if tree.Label == "" && len(tree.Children) == 0 {
		return nil, fmt.Errorf("empty tree")
	}

	return tree, nil
}

// tokenizeBrackets splits a bracket string into "(", ")" and atom tokens.
func tokenizeBrackets(input string) []string {
	var tokens []string
	var atom strings.Builder

	flush := func() {
		if atom.Len() > 0 {
			tokens = append(tokens, atom.String())
			atom.Reset()
		}
	}

	for _, r := range input {
		switch r {
		case '(', ')':
			flush()
			tokens = append(tokens, string(r))
		case ' ', '\t', '\n', '\r':
			flush()
		default:
			atom.WriteRune(r)
		}
	}
	flush()

	return tokens
}

// parseNode parses one node from the token stream and returns the remainder.
func parseNode(tokens []string) (*ParseTree, []string, error) {
	if len(tokens) == 0 {
		return nil, nil, fmt.Errorf("unexpected end of tree string")
	}

	// A bare atom is a leaf.
	if tokens[0] != "(" {
		if tokens[0] == ")" {
			return nil, nil, fmt.Errorf("unexpected ')'")
		}
		return NewParseTree(tokens[0]), tokens[1:], nil
	}

	rest := tokens[1:]
	node := &ParseTree{}

	// Optional label directly after the opening bracket.
	if len(rest) > 0 && rest[0] != "(" && rest[0] != ")" {
		node.Label = rest[0]
		rest = rest[1:]
	}

	for {
		if len(rest) == 0 {
			return nil, nil, fmt.Errorf("unbalanced brackets: missing ')'")
		}
		if rest[0] == ")" {
			rest = rest[1:]
			break
		}

		child, remaining, err := parseNode(rest)
		if err != nil {
			return nil, nil, err
		}
		node.AddChild(child)
		rest = remaining
	}

	return node, rest, nil
}
