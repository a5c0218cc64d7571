package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/leapstack-labs/swiftkt/pkg/core"
)

// parsePrimary parses literals, names, self/super, implicit members,
// parenthesized and tuple expressions, and collection literals.
func (p *Parser) parsePrimary() core.Expr {
	start := p.token.Pos

	switch p.token.Type {
	case TOKEN_IDENT:
		name := p.token.Literal
		p.nextToken()
		return &core.IdentifierExpr{NodeInfo: p.info(start), Name: name}

	case TOKEN_IMPLICIT_PARAM:
		index, err := strconv.Atoi(strings.TrimPrefix(p.token.Literal, "$"))
		if err != nil {
			p.addError(err.Error())
			return nil
		}
		p.nextToken()
		return &core.ImplicitParamExpr{NodeInfo: p.info(start), Index: index}

	case TOKEN_NUMBER:
		lit := p.token.Literal
		p.nextToken()
		kind := core.LiteralInteger
		if isFloatLiteral(lit) {
			kind = core.LiteralFloat
		}
		return &core.LiteralExpr{NodeInfo: p.info(start), Kind: kind, Value: lit}

	case TOKEN_STRING:
		lit := p.token.Literal
		p.nextToken()
		kind := core.LiteralStaticString
		if strings.Contains(lit, `\(`) {
			kind = core.LiteralInterpolatedString
		}
		return &core.LiteralExpr{NodeInfo: p.info(start), Kind: kind, Value: lit}

	case TOKEN_TRUE, TOKEN_FALSE:
		lit := p.token.Literal
		p.nextToken()
		return &core.LiteralExpr{NodeInfo: p.info(start), Kind: core.LiteralBool, Value: lit}

	case TOKEN_NIL:
		p.nextToken()
		return &core.LiteralExpr{NodeInfo: p.info(start), Kind: core.LiteralNil, Value: "nil"}

	case TOKEN_SELF:
		p.nextToken()
		expr := &core.SelfExpr{}
		if p.check(TOKEN_DOT) && p.checkPeek(TOKEN_IDENT) {
			p.nextToken()
			if p.token.Literal == "init" {
				expr.Init = true
			} else {
				expr.Member = p.token.Literal
			}
			p.nextToken()
		}
		expr.NodeInfo = p.info(start)
		return expr

	case TOKEN_SUPER:
		p.nextToken()
		if !p.expect(TOKEN_DOT) {
			return nil
		}
		if !p.check(TOKEN_IDENT) {
			p.addError(fmt.Sprintf(ErrUnexpectedToken, p.token.Type, "member name"))
			return nil
		}
		expr := &core.SuperExpr{}
		if p.token.Literal == "init" {
			expr.Init = true
		} else {
			expr.Member = p.token.Literal
		}
		p.nextToken()
		expr.NodeInfo = p.info(start)
		return expr

	case TOKEN_DOT:
		p.nextToken()
		if !p.check(TOKEN_IDENT) {
			p.addError(fmt.Sprintf(ErrUnexpectedToken, p.token.Type, "member name"))
			return nil
		}
		name := p.token.Literal
		p.nextToken()
		return &core.ImplicitMemberExpr{NodeInfo: p.info(start), Name: name}

	case TOKEN_LPAREN:
		return p.parseParenOrTuple()

	case TOKEN_LBRACKET:
		return p.parseCollectionLiteral()

	case TOKEN_LBRACE:
		p.addError(fmt.Sprintf(ErrUnsupported, "closure"))
		return nil
	}

	p.addError(fmt.Sprintf(ErrUnexpectedToken, p.token.Type, "expression"))
	return nil
}

// parseParenOrTuple parses `(expr)` or a tuple `(a, label: b)`.
func (p *Parser) parseParenOrTuple() core.Expr {
	start := p.token.Pos
	p.nextToken() // consume (

	elems, ok := p.parseArguments(TOKEN_RPAREN)
	if !ok {
		return nil
	}
	if len(elems) == 1 && elems[0].Label == "" {
		return &core.ParenExpr{NodeInfo: p.info(start), Expr: elems[0].Value}
	}
	return &core.TupleExpr{NodeInfo: p.info(start), Elements: elems}
}

// parseCollectionLiteral parses array `[a, b]` and dictionary `[k: v]` literals,
// including the empty forms `[]` and `[:]`.
func (p *Parser) parseCollectionLiteral() core.Expr {
	start := p.token.Pos
	p.nextToken() // consume [

	if p.match(TOKEN_RBRACKET) {
		return &core.LiteralExpr{NodeInfo: p.info(start), Kind: core.LiteralArray}
	}
	if p.check(TOKEN_COLON) && p.checkPeek(TOKEN_RBRACKET) {
		p.nextToken()
		p.nextToken()
		return &core.LiteralExpr{NodeInfo: p.info(start), Kind: core.LiteralDictionary}
	}

	first := p.parseExpression()
	if first == nil {
		return nil
	}

	if p.match(TOKEN_COLON) {
		var entries []core.DictEntry
		value := p.parseExpression()
		if value == nil {
			return nil
		}
		entries = append(entries, core.DictEntry{Key: first, Value: value})
		for p.match(TOKEN_COMMA) {
			if p.check(TOKEN_RBRACKET) {
				break
			}
			key := p.parseExpression()
			if key == nil || !p.expect(TOKEN_COLON) {
				return nil
			}
			value := p.parseExpression()
			if value == nil {
				return nil
			}
			entries = append(entries, core.DictEntry{Key: key, Value: value})
		}
		if !p.expect(TOKEN_RBRACKET) {
			return nil
		}
		return &core.LiteralExpr{NodeInfo: p.info(start), Kind: core.LiteralDictionary, Entries: entries}
	}

	elems := []core.Expr{first}
	for p.match(TOKEN_COMMA) {
		if p.check(TOKEN_RBRACKET) {
			break
		}
		elem := p.parseExpression()
		if elem == nil {
			return nil
		}
		elems = append(elems, elem)
	}
	if !p.expect(TOKEN_RBRACKET) {
		return nil
	}
	return &core.LiteralExpr{NodeInfo: p.info(start), Kind: core.LiteralArray, Elements: elems}
}

// parseType parses the type operand of a cast: named types with generic
// arguments, array and dictionary sugar, and a trailing optional marker.
func (p *Parser) parseType() core.Type {
	start := p.token.Pos
	var typ core.Type

	switch p.token.Type {
	case TOKEN_IDENT:
		ti := &core.TypeIdentifier{}
		for {
			name := core.TypeName{Name: p.token.Literal}
			p.nextToken()
			if p.check(TOKEN_OPERATOR) && p.token.Literal == "<" && !p.token.SpaceBefore {
				p.nextToken()
				for {
					arg := p.parseType()
					if arg == nil {
						return nil
					}
					name.GenericArgs = append(name.GenericArgs, arg)
					if !p.match(TOKEN_COMMA) {
						break
					}
				}
				if !p.check(TOKEN_OPERATOR) || p.token.Literal != ">" {
					p.addError(fmt.Sprintf(ErrUnexpectedToken, p.token.Type, ">"))
					return nil
				}
				p.nextToken()
			}
			ti.Names = append(ti.Names, name)
			if !p.check(TOKEN_DOT) || !p.checkPeek(TOKEN_IDENT) {
				break
			}
			p.nextToken()
		}
		ti.NodeInfo = p.info(start)
		typ = ti

	case TOKEN_LBRACKET:
		p.nextToken()
		elem := p.parseType()
		if elem == nil {
			return nil
		}
		if p.match(TOKEN_COLON) {
			value := p.parseType()
			if value == nil || !p.expect(TOKEN_RBRACKET) {
				return nil
			}
			typ = &core.DictionaryType{NodeInfo: p.info(start), Key: elem, Value: value}
		} else {
			if !p.expect(TOKEN_RBRACKET) {
				return nil
			}
			typ = &core.ArrayType{NodeInfo: p.info(start), Elem: elem}
		}

	default:
		p.addError(fmt.Sprintf(ErrUnexpectedToken, p.token.Type, "type"))
		return nil
	}

	for {
		switch {
		case p.check(TOKEN_QUESTION) && p.isPostfix():
			p.nextToken()
			typ = &core.OptionalType{NodeInfo: p.info(start), Wrapped: typ}
		case p.check(TOKEN_BANG) && p.isPostfix():
			p.nextToken()
			typ = &core.ImplicitlyUnwrappedType{NodeInfo: p.info(start), Wrapped: typ}
		default:
			return typ
		}
	}
}

func isFloatLiteral(lit string) bool {
	if strings.HasPrefix(lit, "0x") || strings.HasPrefix(lit, "0X") {
		return strings.ContainsAny(lit, ".pP")
	}
	return strings.ContainsAny(lit, ".eE")
}
