package testutil

import (
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
)

// DecimalEq matches a decimal.Decimal numerically equal to s, regardless of its exponent
func DecimalEq(s string) gomock.Matcher {
	return decimalMatcher{want: decimal.RequireFromString(s)}
}

type decimalMatcher struct {
	want decimal.Decimal
}

func (m decimalMatcher) Matches(x interface{}) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalMatcher) String() string {
	return "is equal to " + m.want.String()
}
