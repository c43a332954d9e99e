package test

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
)

// DecEq returns a matcher that matches a decimal.Decimal of equal value.
func DecEq(x decimal.Decimal) gomock.Matcher { return decMatcher{x} }

type decMatcher struct {
	x decimal.Decimal
}

func (e decMatcher) Matches(x interface{}) bool {
	switch v := x.(type) {
	case decimal.Decimal:
		return e.x.Equals(v)
	case *decimal.Decimal:
		return v != nil && e.x.Equals(*v)
	default:
		return false
	}
}

func (e decMatcher) String() string {
	return fmt.Sprintf("is equal to %v", e.x)
}

// JSONEq returns a matcher that matches any value whose JSON encoding is
// semantically equal to expected.
func JSONEq(expected string) gomock.Matcher { return jsonMatcher{expected} }

type jsonMatcher struct {
	expected string
}

func (e jsonMatcher) Matches(x interface{}) bool {
	actual, err := json.Marshal(x)
	if err != nil {
		return false
	}
	var want, got interface{}
	if err := json.Unmarshal([]byte(e.expected), &want); err != nil {
		return false
	}
	if err := json.Unmarshal(actual, &got); err != nil {
		return false
	}
	return reflect.DeepEqual(want, got)
}

func (e jsonMatcher) String() string {
	return fmt.Sprintf("marshals to %s", e.expected)
}
