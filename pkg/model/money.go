package model

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Money is an exact fixed-point amount. All price arithmetic goes through it;
// binary floating point never touches a price. Stored as Decimal128 in the
// document store, but older documents may carry strings or doubles, so the
// decoder accepts those too.
type Money struct {
	decimal.Decimal
}

var ZeroMoney = Money{}

func NewMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Money{Decimal: d}, nil
}

// MustMoney panics on a malformed amount. For constants and test fixtures only.
func MustMoney(s string) Money {
	m, err := NewMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

func MoneyFromInt(n int64) Money {
	return Money{Decimal: decimal.NewFromInt(n)}
}

func (m Money) Plus(o Money) Money {
	return Money{Decimal: m.Decimal.Add(o.Decimal)}
}

func (m Money) TimesInt(n int64) Money {
	return Money{Decimal: m.Decimal.Mul(decimal.NewFromInt(n))}
}

func (m Money) Equal(o Money) bool {
	return m.Decimal.Equal(o.Decimal)
}

func (m Money) IsNegative() bool {
	return m.Decimal.IsNegative()
}

func (m Money) MarshalBSONValue() (bsontype.Type, []byte, error) {
	d128, err := primitive.ParseDecimal128(m.Decimal.String())
	if err != nil {
		return bson.TypeNull, nil, fmt.Errorf("amount %s does not fit decimal128: %w", m.Decimal, err)
	}
	return bson.MarshalValue(d128)
}

func (m *Money) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	switch t {
	case bson.TypeDecimal128:
		d128, ok := rv.Decimal128OK()
		if !ok {
			return fmt.Errorf("malformed decimal128 amount")
		}
		d, err := decimal.NewFromString(d128.String())
		if err != nil {
			return fmt.Errorf("invalid decimal128 amount %s: %w", d128, err)
		}
		m.Decimal = d
		return nil
	case bson.TypeString:
		d, err := decimal.NewFromString(rv.StringValue())
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", rv.StringValue(), err)
		}
		m.Decimal = d
		return nil
	case bson.TypeDouble:
		m.Decimal = decimal.NewFromFloat(rv.Double())
		return nil
	case bson.TypeInt32:
		m.Decimal = decimal.NewFromInt32(rv.Int32())
		return nil
	case bson.TypeInt64:
		m.Decimal = decimal.NewFromInt(rv.Int64())
		return nil
	case bson.TypeNull:
		m.Decimal = decimal.Decimal{}
		return nil
	default:
		return fmt.Errorf("cannot decode %s into an amount", t)
	}
}
