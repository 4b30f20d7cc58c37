package rules

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"final-pay-engine/internal/model"
)

func TestDefaultTable(t *testing.T) {
	tbl := Default()
	assert.Equal(t, 21, tbl.Len())

	ca, ok := tbl.Lookup("ca")
	require.True(t, ok)
	assert.Equal(t, "California", ca.Name)
	assert.Equal(t, Rule{Kind: KindFixedDays, Days: 72}, ca.Quit)
	assert.Equal(t, Rule{Kind: KindSameDay}, ca.Fired)

	ny, ok := tbl.Lookup(" ny ")
	require.True(t, ok)
	assert.Equal(t, NextPayday, ny.Quit)

	_, ok = tbl.Lookup("ZZ")
	assert.False(t, ok)
}

func TestJurisdictionsSorted(t *testing.T) {
	js := Default().Jurisdictions()
	for i := 1; i < len(js); i++ {
		assert.Less(t, js[i-1].Code, js[i].Code)
	}

	// Callers get a copy.
	js[0].Name = "changed"
	first := Default().Jurisdictions()[0]
	assert.Equal(t, "California", first.Name)
}

func TestRuleFor(t *testing.T) {
	nh, _ := Default().Lookup("NH")

	r, ok := nh.RuleFor(model.ReasonQuit)
	require.True(t, ok)
	assert.Equal(t, KindNextPayday, r.Kind)

	r, ok = nh.RuleFor(model.ReasonLaidOff)
	require.True(t, ok)
	assert.Equal(t, Rule{Kind: KindFixedDays, Days: 3}, r)

	_, ok = nh.RuleFor(model.SeparationReason("retired"))
	assert.False(t, ok)
}

func TestNewTableRejects(t *testing.T) {
	_, err := NewTable(nil)
	assert.ErrorIs(t, err, ErrEmptyTable)

	_, err = NewTable([]Jurisdiction{
		{Code: "ca", Quit: NextPayday, Fired: NextPayday, LaidOff: NextPayday},
		{Code: "CA", Quit: NextPayday, Fired: NextPayday, LaidOff: NextPayday},
	})
	assert.ErrorContains(t, err, "duplicate jurisdiction CA")

	_, err = NewTable([]Jurisdiction{{Code: " ", Quit: NextPayday, Fired: NextPayday, LaidOff: NextPayday}})
	assert.ErrorContains(t, err, "empty code")

	_, err = NewTable([]Jurisdiction{{Code: "XX", Quit: NextPayday, Fired: Rule{}, LaidOff: NextPayday}})
	assert.ErrorContains(t, err, "invalid fired rule")

	_, err = NewTable([]Jurisdiction{{Code: "XX", Quit: Rule{Kind: KindFixedDays, Days: -2}, Fired: NextPayday, LaidOff: NextPayday}})
	assert.ErrorContains(t, err, "invalid quit rule")

	_, err = NewTable([]Jurisdiction{{Code: "XX", Quit: Days(MaxDays + 1), Fired: NextPayday, LaidOff: NextPayday}})
	assert.ErrorContains(t, err, "invalid quit rule")

	_, err = NewTable([]Jurisdiction{{Code: "XX", Quit: NextPayday, Fired: NextPayday, LaidOff: Days(math.MaxInt)}})
	assert.ErrorContains(t, err, "invalid laid_off rule")

	_, err = NewTable([]Jurisdiction{{Code: "XX", Quit: Days(MaxDays), Fired: NextPayday, LaidOff: NextPayday}})
	assert.NoError(t, err)
}

func TestNewTableDefaultsName(t *testing.T) {
	tbl, err := NewTable([]Jurisdiction{{Code: "gu", Quit: Days(3), Fired: Days(0), LaidOff: NextPayday}})
	require.NoError(t, err)
	gu, ok := tbl.Lookup("GU")
	require.True(t, ok)
	assert.Equal(t, "GU", gu.Name)
}

func TestRuleString(t *testing.T) {
	assert.Equal(t, "0", Days(0).String())
	assert.Equal(t, "72", Days(72).String())
	assert.Equal(t, "next_payday", NextPayday.String())
	assert.Equal(t, "unset", Rule{}.String())
}

func TestInfo(t *testing.T) {
	tx, _ := Default().Lookup("TX")
	assert.Equal(t, model.JurisdictionInfo{
		Code: "TX", Name: "Texas", Quit: "next_payday", Fired: "6", LaidOff: "6",
	}, tx.Info())
}
