package ast

// Clone returns a deep copy of the block. Rewrite passes mutate trees in
// place, so anything that needs a pristine copy (notably concurrent fitness
// evaluation) must clone before applying them.
func (b *Block) Clone() *Block {
	if b == nil {
		return nil
	}
	out := &Block{Pos: b.Pos, Statements: make([]Statement, len(b.Statements))}
	for i, stmt := range b.Statements {
		out.Statements[i] = CloneStatement(stmt)
	}
	return out
}

func CloneStatement(stmt Statement) Statement {
	switch s := stmt.(type) {
	case *Block:
		return s.Clone()
	case *VariableDeclaration:
		return &VariableDeclaration{Pos: s.Pos, Names: cloneIdentifiers(s.Names), Value: CloneExpression(s.Value)}
	case *Assignment:
		return &Assignment{Pos: s.Pos, Targets: cloneIdentifiers(s.Targets), Value: CloneExpression(s.Value)}
	case *If:
		return &If{Pos: s.Pos, Condition: CloneExpression(s.Condition), Body: s.Body.Clone()}
	case *ForLoop:
		return &ForLoop{
			Pos:       s.Pos,
			Init:      s.Init.Clone(),
			Condition: CloneExpression(s.Condition),
			Post:      s.Post.Clone(),
			Body:      s.Body.Clone(),
		}
	case *FunctionDefinition:
		return &FunctionDefinition{
			Pos:     s.Pos,
			Name:    cloneIdentifier(s.Name),
			Params:  cloneIdentifiers(s.Params),
			Returns: cloneIdentifiers(s.Returns),
			Body:    s.Body.Clone(),
		}
	case *ExpressionStatement:
		return &ExpressionStatement{Pos: s.Pos, Expr: CloneExpression(s.Expr)}
	default:
		panic("ast: unknown statement kind")
	}
}

func CloneExpression(expr Expression) Expression {
	switch e := expr.(type) {
	case nil:
		return nil
	case *Literal:
		return &Literal{Pos: e.Pos, Value: e.Value}
	case *Identifier:
		return cloneIdentifier(e)
	case *FunctionCall:
		args := make([]Expression, len(e.Args))
		for i, arg := range e.Args {
			args[i] = CloneExpression(arg)
		}
		return &FunctionCall{Pos: e.Pos, Func: cloneIdentifier(e.Func), Args: args}
	default:
		panic("ast: unknown expression kind")
	}
}

func cloneIdentifier(id *Identifier) *Identifier {
	if id == nil {
		return nil
	}
	return &Identifier{Pos: id.Pos, Name: id.Name}
}

func cloneIdentifiers(ids []*Identifier) []*Identifier {
	out := make([]*Identifier, len(ids))
	for i, id := range ids {
		out[i] = cloneIdentifier(id)
	}
	return out
}
