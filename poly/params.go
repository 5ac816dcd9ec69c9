package poly

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MaxWorkers is the maximum number of goroutines used by a single
// polynomial product.
const MaxWorkers = 8

// DefaultParameters are the parameters of the package-level multiplier
// used by Polynomial.Mul and Polynomial.Mod.
var DefaultParameters = Parameters{workers: MaxWorkers}

// ParametersLiteral is a literal representation of the Multiplier parameters.
// It has public fields and is used to express unchecked user-defined
// parameters literally into Go programs, JSON or YAML documents.
// The NewParametersFromLiteral function is used to generate the actual
// checked parameters from the literal representation.
//
// Workers is the upper bound on the number of goroutines of a product.
// A zero value selects MaxWorkers.
type ParametersLiteral struct {
	Workers int `json:"workers" yaml:"workers"`
}

// Parameters are the checked parameters of a Multiplier.
type Parameters struct {
	workers int
}

// NewParametersFromLiteral instantiates a set of Parameters from a
// ParametersLiteral.
func NewParametersFromLiteral(pl ParametersLiteral) (Parameters, error) {

	switch {
	case pl.Workers == 0:
		return Parameters{workers: MaxWorkers}, nil
	case pl.Workers < 0 || pl.Workers > MaxWorkers:
		return Parameters{}, fmt.Errorf("invalid parameters: Workers=%d must be in [1, %d]", pl.Workers, MaxWorkers)
	}

	return Parameters{workers: pl.Workers}, nil
}

// Workers returns the upper bound on the number of goroutines of a product.
func (p Parameters) Workers() int {
	if p.workers == 0 {
		return MaxWorkers
	}
	return p.workers
}

// ParametersLiteral returns the ParametersLiteral of the target Parameters.
func (p Parameters) ParametersLiteral() ParametersLiteral {
	return ParametersLiteral{Workers: p.Workers()}
}

// MarshalJSON returns a JSON representation of this parameter set. See Marshal from the [encoding/json] package.
func (p Parameters) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ParametersLiteral())
}

// UnmarshalJSON reads a JSON representation of a parameter set into the receiver Parameter. See Unmarshal from the [encoding/json] package.
func (p *Parameters) UnmarshalJSON(data []byte) (err error) {
	var pl ParametersLiteral
	if err = json.Unmarshal(data, &pl); err != nil {
		return err
	}
	*p, err = NewParametersFromLiteral(pl)
	return
}

// MarshalYAML implements the yaml.Marshaler interface.
func (p Parameters) MarshalYAML() (interface{}, error) {
	return p.ParametersLiteral(), nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (p *Parameters) UnmarshalYAML(value *yaml.Node) (err error) {
	var pl ParametersLiteral
	if err = value.Decode(&pl); err != nil {
		return err
	}
	*p, err = NewParametersFromLiteral(pl)
	return
}
