package ast

import "encoding/json"

// ToJSON produces a structured dump of the tree for external reporting.
// It is not a round-trip format; programs are only ever rebuilt from source.
func ToJSON(b *Block) ([]byte, error) {
	return json.MarshalIndent(statementJSON(b), "", "    ")
}

func statementJSON(stmt Statement) map[string]any {
	switch s := stmt.(type) {
	case *Block:
		stmts := make([]map[string]any, len(s.Statements))
		for i, inner := range s.Statements {
			stmts[i] = statementJSON(inner)
		}
		return map[string]any{"nodeType": "Block", "statements": stmts}
	case *VariableDeclaration:
		node := map[string]any{"nodeType": "VariableDeclaration", "variables": identifierNames(s.Names)}
		if s.Value != nil {
			node["value"] = expressionJSON(s.Value)
		}
		return node
	case *Assignment:
		return map[string]any{
			"nodeType": "Assignment",
			"targets":  identifierNames(s.Targets),
			"value":    expressionJSON(s.Value),
		}
	case *If:
		return map[string]any{
			"nodeType":  "If",
			"condition": expressionJSON(s.Condition),
			"body":      statementJSON(s.Body),
		}
	case *ForLoop:
		return map[string]any{
			"nodeType":  "ForLoop",
			"init":      statementJSON(s.Init),
			"condition": expressionJSON(s.Condition),
			"post":      statementJSON(s.Post),
			"body":      statementJSON(s.Body),
		}
	case *FunctionDefinition:
		return map[string]any{
			"nodeType": "FunctionDefinition",
			"name":     s.Name.Name,
			"params":   identifierNames(s.Params),
			"returns":  identifierNames(s.Returns),
			"body":     statementJSON(s.Body),
		}
	case *ExpressionStatement:
		return map[string]any{"nodeType": "ExpressionStatement", "expression": expressionJSON(s.Expr)}
	default:
		panic("ast: unknown statement kind")
	}
}

func expressionJSON(expr Expression) map[string]any {
	switch e := expr.(type) {
	case *Literal:
		return map[string]any{"nodeType": "Literal", "value": e.Value}
	case *Identifier:
		return map[string]any{"nodeType": "Identifier", "name": e.Name}
	case *FunctionCall:
		args := make([]map[string]any, len(e.Args))
		for i, arg := range e.Args {
			args[i] = expressionJSON(arg)
		}
		return map[string]any{"nodeType": "FunctionCall", "function": e.Func.Name, "arguments": args}
	default:
		panic("ast: unknown expression kind")
	}
}

func identifierNames(ids []*Identifier) []string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = id.Name
	}
	return names
}
