package parser

import (
	"strconv"

	"github.com/a-rahimi/infixlang/internal/ast"
	"github.com/a-rahimi/infixlang/internal/lexer"
)

// The infixlang grammar, highest rule = lowest precedence:
//
//	Sequence   := Expr "," Sequence | Expr Sequence | Expr
//	Expr       := Assign | Link | Equality | If
//	Assign     := Variable "=" Expr
//	Link       := Variable "~" Expr
//	If         := "if" Expr
//	Equality   := PlusMinus "==" Equality | PlusMinus
//	PlusMinus  := MulDiv ("+"|"-") PlusMinus | MulDiv
//	MulDiv     := Atom ("*"|"/") MulDiv | Atom
//	Atom       := "(" Sequence ")" | Integer | Variable
//
// Alternative order matters. The three-element Sequence production is tried
// before the two-element juxtaposition form, so both `a, b` and `a b`
// sequence. Binary operators are right-associative in tree shape, which is
// observable for `-`, `/` and `==`: `10 - 2 - 3` is 11 and `2 == 2 == 1` is 0.
var (
	sequenceRule  = &Rule{Name: "Sequence"}
	exprRule      = &Rule{Name: "Expr"}
	assignRule    = &Rule{Name: "Assign"}
	linkRule      = &Rule{Name: "Link"}
	ifRule        = &Rule{Name: "If"}
	equalityRule  = &Rule{Name: "Equality"}
	plusMinusRule = &Rule{Name: "PlusMinus"}
	mulDivRule    = &Rule{Name: "MulDiv"}
	atomRule      = &Rule{Name: "Atom"}
	variableRule  = &Rule{Name: "Variable"}
	integerRule   = &Rule{Name: "Integer"}
)

// The rules are mutually recursive, so their alternatives are wired here
// rather than in the var block.
func init() {
	sequenceRule.Alternatives = []Alternative{
		{Symbols: []Symbol{Ref(exprRule), Term(lexer.COMMA), Ref(sequenceRule)}, Build: buildSequenceCons(2)},
		{Symbols: []Symbol{Ref(exprRule), Ref(sequenceRule)}, Build: buildSequenceCons(1)},
		{Symbols: []Symbol{Ref(exprRule)}, Build: buildSequenceSingle},
	}

	exprRule.Alternatives = []Alternative{
		{Symbols: []Symbol{Ref(assignRule)}},
		{Symbols: []Symbol{Ref(linkRule)}},
		{Symbols: []Symbol{Ref(equalityRule)}},
		{Symbols: []Symbol{Ref(ifRule)}},
	}

	assignRule.Alternatives = []Alternative{
		{Symbols: []Symbol{Ref(variableRule), Term(lexer.ASSIGN), Ref(exprRule)}, Build: buildAssign},
	}

	linkRule.Alternatives = []Alternative{
		{Symbols: []Symbol{Ref(variableRule), Term(lexer.TILDE), Ref(exprRule)}, Build: buildLink},
	}

	ifRule.Alternatives = []Alternative{
		{Symbols: []Symbol{Term(lexer.IF), Ref(exprRule)}, Build: buildIf},
	}

	equalityRule.Alternatives = []Alternative{
		{Symbols: []Symbol{Ref(plusMinusRule), Term(lexer.EQ), Ref(equalityRule)}, Build: buildBinary},
		{Symbols: []Symbol{Ref(plusMinusRule)}},
	}

	plusMinusRule.Alternatives = []Alternative{
		{Symbols: []Symbol{Ref(mulDivRule), Term(lexer.PLUS), Ref(plusMinusRule)}, Build: buildBinary},
		{Symbols: []Symbol{Ref(mulDivRule), Term(lexer.MINUS), Ref(plusMinusRule)}, Build: buildBinary},
		{Symbols: []Symbol{Ref(mulDivRule)}},
	}

	mulDivRule.Alternatives = []Alternative{
		{Symbols: []Symbol{Ref(atomRule), Term(lexer.ASTERISK), Ref(mulDivRule)}, Build: buildBinary},
		{Symbols: []Symbol{Ref(atomRule), Term(lexer.SLASH), Ref(mulDivRule)}, Build: buildBinary},
		{Symbols: []Symbol{Ref(atomRule)}},
	}

	atomRule.Alternatives = []Alternative{
		{Symbols: []Symbol{Term(lexer.LPAREN), Ref(sequenceRule), Term(lexer.RPAREN)}, Build: buildGrouped},
		{Symbols: []Symbol{Ref(integerRule)}},
		{Symbols: []Symbol{Ref(variableRule)}},
	}

	variableRule.Alternatives = []Alternative{
		{Symbols: []Symbol{Term(lexer.IDENT)}, Build: buildIdentifier},
	}

	integerRule.Alternatives = []Alternative{
		{Symbols: []Symbol{Term(lexer.INT)}, Build: buildIntegerLiteral},
	}
}

// buildSequenceCons flattens a nested Sequence production into a single node.
// restIndex is the position of the nested Sequence part (2 for the comma
// form, 1 for juxtaposition).
func buildSequenceCons(restIndex int) BuildFunc {
	return func(parts []Part) ast.Expression {
		rest := parts[restIndex].Node.(*ast.SequenceExpression)
		exprs := make([]ast.Expression, 0, len(rest.Exprs)+1)
		exprs = append(exprs, parts[0].Node)
		exprs = append(exprs, rest.Exprs...)
		return &ast.SequenceExpression{Exprs: exprs}
	}
}

func buildSequenceSingle(parts []Part) ast.Expression {
	return &ast.SequenceExpression{Exprs: []ast.Expression{parts[0].Node}}
}

func buildAssign(parts []Part) ast.Expression {
	return &ast.AssignExpression{
		Token: parts[1].Token,
		Name:  parts[0].Node.(*ast.Identifier),
		Value: parts[2].Node,
	}
}

func buildLink(parts []Part) ast.Expression {
	return &ast.LinkExpression{
		Token: parts[1].Token,
		Name:  parts[0].Node.(*ast.Identifier),
		Value: parts[2].Node,
	}
}

func buildIf(parts []Part) ast.Expression {
	return &ast.IfExpression{
		Token: parts[0].Token,
		Cond:  parts[1].Node,
	}
}

func buildBinary(parts []Part) ast.Expression {
	return &ast.BinaryExpression{
		Token:    parts[1].Token,
		Left:     parts[0].Node,
		Operator: parts[1].Token.Literal,
		Right:    parts[2].Node,
	}
}

func buildGrouped(parts []Part) ast.Expression {
	return &ast.GroupedExpression{
		Token: parts[0].Token,
		Inner: parts[1].Node.(*ast.SequenceExpression),
	}
}

func buildIdentifier(parts []Part) ast.Expression {
	tok := parts[0].Token
	return &ast.Identifier{Token: tok, Value: tok.Literal}
}

func buildIntegerLiteral(parts []Part) ast.Expression {
	tok := parts[0].Token
	// The lexer guarantees a run of decimal digits.
	value, _ := strconv.ParseInt(tok.Literal, 10, 64)
	return &ast.IntegerLiteral{Token: tok, Value: value}
}
