package ast

// VisitExpressions calls fn for every expression nested under stmt,
// parents before children.
func VisitExpressions(stmt Statement, fn func(Expression)) {
	switch s := stmt.(type) {
	case *Block:
		for _, inner := range s.Statements {
			VisitExpressions(inner, fn)
		}
	case *VariableDeclaration:
		visitExpression(s.Value, fn)
	case *Assignment:
		visitExpression(s.Value, fn)
	case *If:
		visitExpression(s.Condition, fn)
		VisitExpressions(s.Body, fn)
	case *ForLoop:
		VisitExpressions(s.Init, fn)
		visitExpression(s.Condition, fn)
		VisitExpressions(s.Post, fn)
		VisitExpressions(s.Body, fn)
	case *FunctionDefinition:
		VisitExpressions(s.Body, fn)
	case *ExpressionStatement:
		visitExpression(s.Expr, fn)
	}
}

func visitExpression(expr Expression, fn func(Expression)) {
	if expr == nil {
		return
	}
	fn(expr)
	if call, ok := expr.(*FunctionCall); ok {
		for _, arg := range call.Args {
			visitExpression(arg, fn)
		}
	}
}

// RewriteExpressions replaces every expression in the statement subtree with
// fn's result. Passes use it to swap subtrees without caring which field
// holds them; fn is responsible for recursing into call arguments if it
// wants to rewrite those too.
func RewriteExpressions(stmt Statement, fn func(Expression) Expression) {
	switch s := stmt.(type) {
	case *Block:
		for _, inner := range s.Statements {
			RewriteExpressions(inner, fn)
		}
	case *VariableDeclaration:
		if s.Value != nil {
			s.Value = fn(s.Value)
		}
	case *Assignment:
		s.Value = fn(s.Value)
	case *If:
		s.Condition = fn(s.Condition)
		RewriteExpressions(s.Body, fn)
	case *ForLoop:
		RewriteExpressions(s.Init, fn)
		s.Condition = fn(s.Condition)
		RewriteExpressions(s.Post, fn)
		RewriteExpressions(s.Body, fn)
	case *FunctionDefinition:
		RewriteExpressions(s.Body, fn)
	case *ExpressionStatement:
		s.Expr = fn(s.Expr)
	}
}

// VisitBlocks calls fn for every block nested under b, including b itself,
// parents before children.
func VisitBlocks(b *Block, fn func(*Block)) {
	fn(b)
	for _, stmt := range b.Statements {
		switch s := stmt.(type) {
		case *Block:
			VisitBlocks(s, fn)
		case *If:
			VisitBlocks(s.Body, fn)
		case *ForLoop:
			VisitBlocks(s.Init, fn)
			VisitBlocks(s.Post, fn)
			VisitBlocks(s.Body, fn)
		case *FunctionDefinition:
			VisitBlocks(s.Body, fn)
		}
	}
}
