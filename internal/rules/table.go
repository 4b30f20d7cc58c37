package rules

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var ErrEmptyTable = errors.New("rule table has no jurisdictions")

// Table is an immutable set of jurisdiction rules keyed by normalized code.
type Table struct {
	byCode map[string]Jurisdiction
	codes  []string
}

// NewTable copies js into a new table. Codes are normalized; empty or
// duplicate codes and malformed rules are rejected.
func NewTable(js []Jurisdiction) (*Table, error) {
	if len(js) == 0 {
		return nil, ErrEmptyTable
	}
	t := &Table{
		byCode: make(map[string]Jurisdiction, len(js)),
		codes:  make([]string, 0, len(js)),
	}
	for _, j := range js {
		j.Code = Normalize(j.Code)
		if j.Code == "" {
			return nil, errors.New("jurisdiction with empty code")
		}
		if _, dup := t.byCode[j.Code]; dup {
			return nil, fmt.Errorf("duplicate jurisdiction %s", j.Code)
		}
		if err := j.validate(); err != nil {
			return nil, err
		}
		if j.Name == "" {
			j.Name = j.Code
		}
		t.byCode[j.Code] = j
		t.codes = append(t.codes, j.Code)
	}
	sort.Strings(t.codes)
	return t, nil
}

// Normalize case-folds a jurisdiction code to its canonical upper-case form.
func Normalize(code string) string {
	// Casers carry state, so one is made per call rather than shared.
	return cases.Upper(language.Und).String(strings.TrimSpace(code))
}

func (t *Table) Lookup(code string) (Jurisdiction, bool) {
	j, ok := t.byCode[Normalize(code)]
	return j, ok
}

func (t *Table) Len() int {
	return len(t.codes)
}

// Jurisdictions returns every entry sorted by code.
func (t *Table) Jurisdictions() []Jurisdiction {
	out := make([]Jurisdiction, 0, len(t.codes))
	for _, c := range t.codes {
		out = append(out, t.byCode[c])
	}
	return out
}
