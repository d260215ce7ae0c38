package geometry

import "gopkg.in/yaml.v3"

// UnmarshalYAML decodes an Attractor from its config string name (e.g. "POINT").
func (a *Attractor) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	v, err := ParseAttractor(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// MarshalYAML encodes an Attractor as its config string name.
func (a Attractor) MarshalYAML() (interface{}, error) {
	return a.String(), nil
}

// UnmarshalYAML decodes a Lattice from its config string name (e.g. "SQUARE").
func (l *Lattice) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	v, err := ParseLattice(s)
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// MarshalYAML encodes a Lattice as its config string name.
func (l Lattice) MarshalYAML() (interface{}, error) {
	return l.String(), nil
}
