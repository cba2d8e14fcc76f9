/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package query

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"

	"github.com/suparena/objectstore/errors"
)

// Predicate is a declarative filter over object properties, built from the
// combinators in this package and translated to the query engine's filter
// representation when a scoped query is constructed. The zero Predicate is
// invalid and fails translation.
type Predicate struct {
	op       predicateOp
	key      string
	value    any
	values   []any
	children []Predicate
}

type predicateOp int

const (
	opInvalid predicateOp = iota
	opEqual
	opNotEqual
	opGreaterThan
	opGreaterOrEqual
	opLessThan
	opLessOrEqual
	opBeginsWith
	opContains
	opIn
	opExists
	opNotExists
	opAnd
	opOr
	opNot
	opMatches
)

func (o predicateOp) String() string {
	switch o {
	case opEqual:
		return "equal"
	case opNotEqual:
		return "notEqual"
	case opGreaterThan:
		return "greaterThan"
	case opGreaterOrEqual:
		return "greaterOrEqual"
	case opLessThan:
		return "lessThan"
	case opLessOrEqual:
		return "lessOrEqual"
	case opBeginsWith:
		return "beginsWith"
	case opContains:
		return "contains"
	case opIn:
		return "in"
	case opExists:
		return "exists"
	case opNotExists:
		return "notExists"
	case opAnd:
		return "and"
	case opOr:
		return "or"
	case opNot:
		return "not"
	case opMatches:
		return "matches"
	default:
		return "invalid"
	}
}

// Equal matches objects whose property equals value.
func Equal(key string, value any) Predicate {
	return Predicate{op: opEqual, key: key, value: value}
}

// NotEqual matches objects whose property differs from value.
func NotEqual(key string, value any) Predicate {
	return Predicate{op: opNotEqual, key: key, value: value}
}

// GreaterThan matches objects whose property is greater than value.
func GreaterThan(key string, value any) Predicate {
	return Predicate{op: opGreaterThan, key: key, value: value}
}

// GreaterOrEqual matches objects whose property is at least value.
func GreaterOrEqual(key string, value any) Predicate {
	return Predicate{op: opGreaterOrEqual, key: key, value: value}
}

// LessThan matches objects whose property is less than value.
func LessThan(key string, value any) Predicate {
	return Predicate{op: opLessThan, key: key, value: value}
}

// LessOrEqual matches objects whose property is at most value.
func LessOrEqual(key string, value any) Predicate {
	return Predicate{op: opLessOrEqual, key: key, value: value}
}

// BeginsWith matches string properties with the given prefix.
func BeginsWith(key, prefix string) Predicate {
	return Predicate{op: opBeginsWith, key: key, value: prefix}
}

// Contains matches string properties containing substr.
func Contains(key, substr string) Predicate {
	return Predicate{op: opContains, key: key, value: substr}
}

// In matches objects whose property equals one of the given values.
func In(key string, values ...any) Predicate {
	return Predicate{op: opIn, key: key, values: values}
}

// Exists matches objects that have the property at all.
func Exists(key string) Predicate {
	return Predicate{op: opExists, key: key}
}

// NotExists matches objects lacking the property.
func NotExists(key string) Predicate {
	return Predicate{op: opNotExists, key: key}
}

// And matches objects satisfying every child predicate.
func And(preds ...Predicate) Predicate {
	return Predicate{op: opAnd, children: preds}
}

// Or matches objects satisfying at least one child predicate.
func Or(preds ...Predicate) Predicate {
	return Predicate{op: opOr, children: preds}
}

// Not inverts a predicate.
func Not(pred Predicate) Predicate {
	return Predicate{op: opNot, children: []Predicate{pred}}
}

// Matches declares a regular-expression match. No query engine supported
// by this library can evaluate it; it exists so callers migrating
// regex-based filters get a descriptive translation error instead of a
// silently dropped filter.
func Matches(key, pattern string) Predicate {
	return Predicate{op: opMatches, key: key, value: pattern}
}

// Translate converts a predicate into the engine's filter representation.
// Predicates using constructs the translator does not support fail with an
// UnsupportedPredicateError; no partial translation is returned.
func Translate(p Predicate) (expression.ConditionBuilder, error) {
	var zero expression.ConditionBuilder

	switch p.op {
	case opEqual, opNotEqual, opGreaterThan, opGreaterOrEqual, opLessThan, opLessOrEqual,
		opBeginsWith, opContains, opIn, opExists, opNotExists:
		if p.key == "" {
			return zero, errors.NewUnsupportedPredicateError(p.op.String(), "empty attribute name")
		}
	}

	switch p.op {
	case opEqual:
		return expression.Name(p.key).Equal(expression.Value(p.value)), nil
	case opNotEqual:
		return expression.Name(p.key).NotEqual(expression.Value(p.value)), nil
	case opGreaterThan:
		return expression.Name(p.key).GreaterThan(expression.Value(p.value)), nil
	case opGreaterOrEqual:
		return expression.Name(p.key).GreaterThanEqual(expression.Value(p.value)), nil
	case opLessThan:
		return expression.Name(p.key).LessThan(expression.Value(p.value)), nil
	case opLessOrEqual:
		return expression.Name(p.key).LessThanEqual(expression.Value(p.value)), nil
	case opBeginsWith:
		prefix, ok := p.value.(string)
		if !ok {
			return zero, errors.NewUnsupportedPredicateError("beginsWith", "prefix must be a string")
		}
		return expression.Name(p.key).BeginsWith(prefix), nil
	case opContains:
		substr, ok := p.value.(string)
		if !ok {
			return zero, errors.NewUnsupportedPredicateError("contains", "operand must be a string")
		}
		return expression.Name(p.key).Contains(substr), nil
	case opIn:
		if len(p.values) == 0 {
			return zero, errors.NewUnsupportedPredicateError("in", "needs at least one value")
		}
		first := expression.Value(p.values[0])
		rest := make([]expression.OperandBuilder, 0, len(p.values)-1)
		for _, v := range p.values[1:] {
			rest = append(rest, expression.Value(v))
		}
		return expression.Name(p.key).In(first, rest...), nil
	case opExists:
		return expression.Name(p.key).AttributeExists(), nil
	case opNotExists:
		return expression.Name(p.key).AttributeNotExists(), nil
	case opAnd, opOr:
		return translateCompound(p)
	case opNot:
		if len(p.children) != 1 {
			return zero, errors.NewUnsupportedPredicateError("not", "needs exactly one operand")
		}
		child, err := Translate(p.children[0])
		if err != nil {
			return zero, err
		}
		return expression.Not(child), nil
	case opMatches:
		return zero, errors.NewUnsupportedPredicateError("matches", "regular expressions cannot be translated")
	default:
		return zero, errors.NewUnsupportedPredicateError("", "empty predicate")
	}
}

func translateCompound(p Predicate) (expression.ConditionBuilder, error) {
	var zero expression.ConditionBuilder
	if len(p.children) == 0 {
		return zero, errors.NewUnsupportedPredicateError(p.op.String(), "needs at least one operand")
	}

	conds := make([]expression.ConditionBuilder, 0, len(p.children))
	for _, child := range p.children {
		c, err := Translate(child)
		if err != nil {
			return zero, fmt.Errorf("translating %s operand: %w", p.op, err)
		}
		conds = append(conds, c)
	}
	if len(conds) == 1 {
		return conds[0], nil
	}

	if p.op == opAnd {
		return expression.And(conds[0], conds[1], conds[2:]...), nil
	}
	return expression.Or(conds[0], conds[1], conds[2:]...), nil
}
