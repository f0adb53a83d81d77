package ast

import (
	"fmt"
	"strings"
)

// String renders the block as parseable source text.
func (b *Block) String() string {
	if len(b.Statements) == 0 {
		return "{ }"
	}

	var sb strings.Builder
	sb.WriteString("{\n")
	for _, stmt := range b.Statements {
		sb.WriteString("    " + strings.ReplaceAll(stmt.String(), "\n", "\n    ") + "\n")
	}
	sb.WriteString("}")
	return sb.String()
}

func (vd *VariableDeclaration) String() string {
	names := identifierList(vd.Names)
	if vd.Value == nil {
		return fmt.Sprintf("let %s", names)
	}
	return fmt.Sprintf("let %s := %s", names, vd.Value.String())
}

func (a *Assignment) String() string {
	return fmt.Sprintf("%s := %s", identifierList(a.Targets), a.Value.String())
}

func (i *If) String() string {
	return fmt.Sprintf("if %s %s", i.Condition.String(), i.Body.String())
}

func (f *ForLoop) String() string {
	return fmt.Sprintf("for %s %s %s %s",
		f.Init.String(), f.Condition.String(), f.Post.String(), f.Body.String())
}

func (fd *FunctionDefinition) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("function %s(%s)", fd.Name.Name, identifierList(fd.Params)))
	if len(fd.Returns) > 0 {
		sb.WriteString(" -> " + identifierList(fd.Returns))
	}
	sb.WriteString(" " + fd.Body.String())
	return sb.String()
}

func (es *ExpressionStatement) String() string {
	return es.Expr.String()
}

func (l *Literal) String() string {
	return l.Value
}

func (i *Identifier) String() string {
	return i.Name
}

func (fc *FunctionCall) String() string {
	args := make([]string, len(fc.Args))
	for i, arg := range fc.Args {
		args[i] = arg.String()
	}
	return fmt.Sprintf("%s(%s)", fc.Func.Name, strings.Join(args, ", "))
}

func identifierList(idents []*Identifier) string {
	names := make([]string, len(idents))
	for i, id := range idents {
		names[i] = id.Name
	}
	return strings.Join(names, ", ")
}
