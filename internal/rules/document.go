package rules

import (
	"errors"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// schema describes a rule document. YAML files and remote JSON documents are
// both unified with #RuleFile before any table is built.
const schema = `
#Outcome: int & >=0 & <=3650 | "next_payday"

#Jurisdiction: {
	name?:    string
	quit:     #Outcome
	fired:    #Outcome
	laid_off: #Outcome
}

#RuleFile: {
	jurisdictions: [string]: #Jurisdiction
}
`

// LoadFile reads a YAML rule document from disk.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rule file: %w", err)
	}
	t, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// ParseYAML builds a table from a YAML rule document.
func ParseYAML(data []byte) (*Table, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if raw == nil {
		return nil, errors.New("empty rule document")
	}
	ctx := cuecontext.New()
	return build(ctx, ctx.Encode(raw))
}

// ParseJSON builds a table from a JSON rule document.
func ParseJSON(data []byte) (*Table, error) {
	// CUE accepts a superset of JSON; only plain JSON is allowed in.
	if !json.Valid(data) {
		return nil, errors.New("rule document is not valid JSON")
	}
	ctx := cuecontext.New()
	return build(ctx, ctx.CompileBytes(data))
}

func build(ctx *cue.Context, doc cue.Value) (*Table, error) {
	if err := doc.Err(); err != nil {
		return nil, formatCUEError(err)
	}
	def := ctx.CompileString(schema).LookupPath(cue.ParsePath("#RuleFile"))
	if err := def.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	v := def.Unify(doc)
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, formatCUEError(err)
	}

	iter, err := v.LookupPath(cue.ParsePath("jurisdictions")).Fields()
	if err != nil {
		return nil, formatCUEError(err)
	}

	var js []Jurisdiction
	for iter.Next() {
		j, err := decodeJurisdiction(iter.Label(), iter.Value())
		if err != nil {
			return nil, err
		}
		js = append(js, j)
	}
	return NewTable(js)
}

func decodeJurisdiction(code string, v cue.Value) (Jurisdiction, error) {
	j := Jurisdiction{Code: code}

	if name := v.LookupPath(cue.ParsePath("name")); name.Exists() && name.IsConcrete() {
		s, err := name.String()
		if err != nil {
			return j, formatCUEError(err)
		}
		j.Name = s
	}

	var err error
	if j.Quit, err = decodeRule(v.LookupPath(cue.ParsePath("quit"))); err != nil {
		return j, fmt.Errorf("jurisdictions.%s.quit: %w", code, err)
	}
	if j.Fired, err = decodeRule(v.LookupPath(cue.ParsePath("fired"))); err != nil {
		return j, fmt.Errorf("jurisdictions.%s.fired: %w", code, err)
	}
	if j.LaidOff, err = decodeRule(v.LookupPath(cue.ParsePath("laid_off"))); err != nil {
		return j, fmt.Errorf("jurisdictions.%s.laid_off: %w", code, err)
	}
	return j, nil
}

func decodeRule(v cue.Value) (Rule, error) {
	switch v.Kind() {
	case cue.IntKind:
		n, err := v.Int64()
		if err != nil {
			return Rule{}, err
		}
		return Days(int(n)), nil
	case cue.StringKind:
		s, err := v.String()
		if err != nil {
			return Rule{}, err
		}
		if s == NextPaydayToken {
			return NextPayday, nil
		}
		return Rule{}, fmt.Errorf("unknown rule %q", s)
	}
	return Rule{}, fmt.Errorf("unsupported rule kind %s", v.Kind())
}

func formatCUEError(err error) error {
	if err == nil {
		return nil
	}
	if len(cueerrors.Errors(err)) == 0 {
		return err
	}
	return fmt.Errorf("invalid rule document: %s", cueerrors.Details(err, nil))
}
