package parser

import (
	"fmt"

	"github.com/leapstack-labs/swiftkt/pkg/core"
)

// Expression precedence parsing using a Pratt parser with Swift's
// standard precedence groups, lowest first:
//
//	precAssignment     = 1  (=)
//	precTernary        = 2  (? :)
//	precDisjunction    = 3  (||)
//	precConjunction    = 4  (&&)
//	precComparison     = 5  (== != < > <= >= === !==)
//	precNilCoalescing  = 6  (??)
//	precCasting        = 7  (is, as, as?, as!)
//	precRange          = 8  (..., ..<)
//	precAddition       = 9  (+ - | ^)
//	precMultiplication = 10 (* / % &)
//	precShift          = 11 (<< >>)
const (
	precNone = iota
	precAssignment
	precTernary
	precDisjunction
	precConjunction
	precComparison
	precNilCoalescing
	precCasting
	precRange
	precAddition
	precMultiplication
	precShift
)

var binaryPrecedence = map[string]int{
	"||":  precDisjunction,
	"&&":  precConjunction,
	"==":  precComparison,
	"!=":  precComparison,
	"===": precComparison,
	"!==": precComparison,
	"<":   precComparison,
	">":   precComparison,
	"<=":  precComparison,
	">=":  precComparison,
	"~=":  precComparison,
	"??":  precNilCoalescing,
	"...": precRange,
	"..<": precRange,
	"+":   precAddition,
	"-":   precAddition,
	"|":   precAddition,
	"^":   precAddition,
	"&+":  precAddition,
	"&-":  precAddition,
	"*":   precMultiplication,
	"/":   precMultiplication,
	"%":   precMultiplication,
	"&":   precMultiplication,
	"&*":  precMultiplication,
	"<<":  precShift,
	">>":  precShift,
	"+=":  precAssignment,
	"-=":  precAssignment,
	"*=":  precAssignment,
	"/=":  precAssignment,
	"%=":  precAssignment,
}

// rightAssociative operators bind to the right operand first.
var rightAssociative = map[string]bool{
	"??": true,
	"+=": true,
	"-=": true,
	"*=": true,
	"/=": true,
	"%=": true,
}

// parseExpression parses an expression using precedence climbing.
func (p *Parser) parseExpression() core.Expr {
	return p.parseExpressionWithPrecedence(precAssignment)
}

// parseExpressionWithPrecedence implements Pratt parsing.
func (p *Parser) parseExpressionWithPrecedence(minPrecedence int) core.Expr {
	left := p.parsePrefixExpr()
	if left == nil {
		return nil
	}

	for {
		prec := p.infixPrecedence()
		if prec == precNone || prec < minPrecedence {
			break
		}

		left = p.parseInfixExpr(left, prec)
		if left == nil {
			break
		}
	}

	return left
}

// infixPrecedence returns the precedence of the current token as an infix
// operator, or precNone.
func (p *Parser) infixPrecedence() int {
	switch p.token.Type {
	case TOKEN_ASSIGN:
		return precAssignment
	case TOKEN_QUESTION:
		if !p.isPostfix() {
			return precTernary
		}
	case TOKEN_IS, TOKEN_AS:
		return precCasting
	case TOKEN_OPERATOR:
		return binaryPrecedence[p.token.Literal]
	}
	return precNone
}

// parseInfixExpr parses an infix expression given the left operand.
func (p *Parser) parseInfixExpr(left core.Expr, prec int) core.Expr {
	start := left.Info().Span.Start

	switch p.token.Type {
	case TOKEN_ASSIGN:
		p.nextToken()
		right := p.parseExpressionWithPrecedence(prec)
		if right == nil {
			return nil
		}
		return &core.AssignExpr{NodeInfo: p.info(start), Left: left, Right: right}

	case TOKEN_QUESTION:
		p.nextToken()
		whenTrue := p.parseExpressionWithPrecedence(precTernary)
		if whenTrue == nil || !p.expect(TOKEN_COLON) {
			return nil
		}
		whenFalse := p.parseExpressionWithPrecedence(precTernary)
		if whenFalse == nil {
			return nil
		}
		return &core.TernaryExpr{NodeInfo: p.info(start), Cond: left, True: whenTrue, False: whenFalse}

	case TOKEN_IS:
		p.nextToken()
		typ := p.parseType()
		if typ == nil {
			return nil
		}
		return &core.TypeCastExpr{NodeInfo: p.info(start), Kind: core.CastCheck, Expr: left, Type: typ}

	case TOKEN_AS:
		p.nextToken()
		kind := core.CastPlain
		switch {
		case p.check(TOKEN_QUESTION) && p.isPostfix():
			kind = core.CastConditional
			p.nextToken()
		case p.check(TOKEN_BANG) && p.isPostfix():
			kind = core.CastForced
			p.nextToken()
		}
		typ := p.parseType()
		if typ == nil {
			return nil
		}
		return &core.TypeCastExpr{NodeInfo: p.info(start), Kind: kind, Expr: left, Type: typ}
	}

	op := p.token.Literal
	p.nextToken()
	next := prec + 1
	if rightAssociative[op] {
		next = prec
	}
	right := p.parseExpressionWithPrecedence(next)
	if right == nil {
		return nil
	}
	return &core.BinaryExpr{NodeInfo: p.info(start), Op: op, Left: left, Right: right}
}

// parsePrefixExpr parses try, prefix operators and postfix chains.
func (p *Parser) parsePrefixExpr() core.Expr {
	start := p.token.Pos

	switch p.token.Type {
	case TOKEN_TRY:
		p.nextToken()
		kind := core.TryPlain
		if p.check(TOKEN_QUESTION) && p.isPostfix() {
			kind = core.TryOptional
			p.nextToken()
		} else if p.check(TOKEN_BANG) && p.isPostfix() {
			kind = core.TryForced
			p.nextToken()
		}
		expr := p.parseExpressionWithPrecedence(precTernary)
		if expr == nil {
			return nil
		}
		return &core.TryExpr{NodeInfo: p.info(start), Kind: kind, Expr: expr}

	case TOKEN_BANG:
		p.nextToken()
		operand := p.parsePrefixExpr()
		if operand == nil {
			return nil
		}
		return &core.PrefixExpr{NodeInfo: p.info(start), Op: "!", Operand: operand}

	case TOKEN_OPERATOR:
		op := p.token.Literal
		if op != "-" && op != "+" && op != "~" {
			p.addError(fmt.Sprintf(ErrUnexpectedToken, op, "expression"))
			return nil
		}
		p.nextToken()
		operand := p.parsePrefixExpr()
		if operand == nil {
			return nil
		}
		return &core.PrefixExpr{NodeInfo: p.info(start), Op: op, Operand: operand}
	}

	primary := p.parsePrimary()
	if primary == nil {
		return nil
	}
	return p.parsePostfix(primary)
}

// parsePostfix parses member access, calls, subscripts and the postfix
// ? and ! operators following an operand.
func (p *Parser) parsePostfix(base core.Expr) core.Expr {
	start := base.Info().Span.Start
	for {
		switch {
		case p.check(TOKEN_DOT):
			p.nextToken()
			if !p.check(TOKEN_IDENT) && !p.check(TOKEN_NUMBER) && !p.check(TOKEN_SELF) {
				p.addError(fmt.Sprintf(ErrUnexpectedToken, p.token.Type, "member name"))
				return nil
			}
			member := p.token.Literal
			p.nextToken()
			base = &core.ExplicitMemberExpr{NodeInfo: p.info(start), Base: base, Member: member}

		case p.check(TOKEN_LPAREN) && !p.token.SpaceBefore:
			p.nextToken()
			args, ok := p.parseArguments(TOKEN_RPAREN)
			if !ok {
				return nil
			}
			base = &core.FunctionCallExpr{NodeInfo: p.info(start), Callee: base, Args: args}

		case p.check(TOKEN_LBRACKET) && !p.token.SpaceBefore:
			p.nextToken()
			args, ok := p.parseArguments(TOKEN_RBRACKET)
			if !ok {
				return nil
			}
			base = &core.SubscriptExpr{NodeInfo: p.info(start), Base: base, Args: args}

		case p.check(TOKEN_QUESTION) && p.isPostfix():
			p.nextToken()
			base = &core.OptionalChainingExpr{NodeInfo: p.info(start), Expr: base}

		case p.check(TOKEN_BANG) && p.isPostfix():
			p.nextToken()
			base = &core.ForcedValueExpr{NodeInfo: p.info(start), Expr: base}

		case p.check(TOKEN_LBRACE):
			p.addError(fmt.Sprintf(ErrUnsupported, "closure"))
			return nil

		default:
			return base
		}
	}
}

// parseArguments parses a comma-separated, optionally labeled argument
// list up to and including the closing token.
func (p *Parser) parseArguments(closing TokenType) ([]core.Argument, bool) {
	var args []core.Argument
	for !p.check(closing) {
		var arg core.Argument
		if (p.check(TOKEN_IDENT) || isKeywordLabel(p.token.Type)) && p.checkPeek(TOKEN_COLON) {
			arg.Label = p.token.Literal
			p.nextToken()
			p.nextToken()
		}
		arg.Value = p.parseExpression()
		if arg.Value == nil {
			return nil, false
		}
		args = append(args, arg)
		if !p.match(TOKEN_COMMA) {
			break
		}
	}
	if !p.expect(closing) {
		return nil, false
	}
	return args, true
}

func isKeywordLabel(t TokenType) bool {
	switch t {
	case TOKEN_IS, TOKEN_AS, TOKEN_SELF, TOKEN_TRY:
		return true
	}
	return false
}
