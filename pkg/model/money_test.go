package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNewMoney(t *testing.T) {
	m, err := NewMoney("100.50")
	require.NoError(t, err)
	assert.True(t, m.Equal(MustMoney("100.5")))

	_, err = NewMoney("not a number")
	assert.Error(t, err)
}

func TestMoneyArithmeticIsExact(t *testing.T) {
	sum := MustMoney("0.1").Plus(MustMoney("0.2"))
	assert.True(t, sum.Equal(MustMoney("0.3")), "got %s", sum)

	assert.True(t, MustMoney("33.33").TimesInt(3).Equal(MustMoney("99.99")))
	assert.True(t, ZeroMoney.Plus(MustMoney("5")).Equal(MustMoney("5")))
}

func TestMoneyIsNegative(t *testing.T) {
	assert.True(t, MustMoney("-0.01").IsNegative())
	assert.False(t, ZeroMoney.IsNegative())
	assert.False(t, MustMoney("1").IsNegative())
}

func TestMoneyJSONAcceptsStringAndNumber(t *testing.T) {
	var fromString, fromNumber Money
	require.NoError(t, json.Unmarshal([]byte(`"100.50"`), &fromString))
	require.NoError(t, json.Unmarshal([]byte(`100.50`), &fromNumber))
	assert.True(t, fromString.Equal(fromNumber))
}

func TestMoneyBSONRoundTrip(t *testing.T) {
	type doc struct {
		Price Money `bson:"price"`
	}
	in := doc{Price: MustMoney("123.45")}

	data, err := bson.Marshal(in)
	require.NoError(t, err)

	// Stored as decimal128, not as a double.
	raw := bson.Raw(data)
	rv, err := raw.LookupErr("price")
	require.NoError(t, err)
	assert.Equal(t, bson.TypeDecimal128, rv.Type)

	var out doc
	require.NoError(t, bson.Unmarshal(data, &out))
	assert.True(t, in.Price.Equal(out.Price))
}

func TestMoneyBSONDecodesLegacyShapes(t *testing.T) {
	d128, err := primitive.ParseDecimal128("99.99")
	require.NoError(t, err)

	tests := []struct {
		name string
		doc  bson.M
		want Money
	}{
		{"decimal128", bson.M{"price": d128}, MustMoney("99.99")},
		{"string", bson.M{"price": "99.99"}, MustMoney("99.99")},
		{"double", bson.M{"price": 99.5}, MustMoney("99.5")},
		{"int32", bson.M{"price": int32(99)}, MustMoney("99")},
		{"int64", bson.M{"price": int64(99)}, MustMoney("99")},
		{"null", bson.M{"price": nil}, ZeroMoney},
	}

	type doc struct {
		Price Money `bson:"price"`
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := bson.Marshal(tt.doc)
			require.NoError(t, err)

			var out doc
			require.NoError(t, bson.Unmarshal(data, &out))
			assert.True(t, out.Price.Equal(tt.want), "got %s", out.Price)
		})
	}
}
