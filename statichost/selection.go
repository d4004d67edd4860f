package statichost

import (
	"github.com/ezachrisen/reportfilter"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Selection is the selection of a parameter. In YAML it's a list whose items are either
// bare codes or {code, label} mappings; a single bare code is accepted too.
type Selection []reportfilter.Option

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Selection) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*s = Selection{{Code: value.Value}}
		return nil
	case yaml.SequenceNode:
		sel := make(Selection, 0, len(value.Content))
		for _, item := range value.Content {
			o, err := decodeOption(item)
			if err != nil {
				return err
			}
			sel = append(sel, o)
		}
		*s = sel
		return nil
	}
	return errors.Errorf("line %d: selection must be a code or a list of codes", value.Line)
}

func decodeOption(n *yaml.Node) (reportfilter.Option, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		return reportfilter.Option{Code: n.Value}, nil
	case yaml.MappingNode:
		var o reportfilter.Option
		if err := n.Decode(&o); err != nil {
			return o, errors.Wrapf(err, "line %d", n.Line)
		}
		if o.Code == "" {
			return o, errors.Errorf("line %d: option without code", n.Line)
		}
		return o, nil
	}
	return reportfilter.Option{}, errors.Errorf("line %d: unexpected option", n.Line)
}
