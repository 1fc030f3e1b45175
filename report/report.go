// Package report renders validation results for transport boundaries. JSON
// output goes through goccy/go-json, YAML through yaml.v3; both keep the
// ErrorMap's property order, which plain Go maps would lose.
package report

import (
	"bytes"
	"fmt"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	vouch "github.com/vouch-dev/vouch"
)

// JSON encodes an ErrorMap as a JSON object of path -> message list, keys in
// insertion order.
func JSON(errs *vouch.ErrorMap) ([]byte, error) {
	if errs == nil {
		return []byte("{}"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	var encErr error
	errs.Range(func(path string, messages []string) bool {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		k, err := gojson.Marshal(path)
		if err != nil {
			encErr = err
			return false
		}
		v, err := gojson.Marshal(messages)
		if err != nil {
			encErr = err
			return false
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
		return true
	})
	if encErr != nil {
		return nil, fmt.Errorf("report: encode error map: %w", encErr)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// YAML encodes an ErrorMap as a YAML mapping, keys in insertion order.
func YAML(errs *vouch.ErrorMap) ([]byte, error) {
	return yaml.Marshal(errorMapNode(errs))
}

// OutcomeJSON shapes an Outcome for a JSON response: a status tag plus either
// the failure message or the ordered error object.
func OutcomeJSON[T any](o vouch.Outcome[T]) ([]byte, error) {
	switch o.Kind() {
	case vouch.KindSuccess:
		return gojson.Marshal(statusPayload{Status: o.Kind().String()})
	case vouch.KindValidation:
		errs, err := JSON(o.Errors())
		if err != nil {
			return nil, err
		}
		return gojson.Marshal(statusPayload{Status: o.Kind().String(), Errors: errs})
	default:
		return gojson.Marshal(statusPayload{Status: o.Kind().String(), Message: o.FailureMessage()})
	}
}

// OutcomeYAML is OutcomeJSON's YAML counterpart.
func OutcomeYAML[T any](o vouch.Outcome[T]) ([]byte, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	appendEntry(node, "status", scalarNode(o.Kind().String()))
	switch o.Kind() {
	case vouch.KindSuccess:
	case vouch.KindValidation:
		appendEntry(node, "errors", errorMapNode(o.Errors()))
	default:
		appendEntry(node, "message", scalarNode(o.FailureMessage()))
	}
	return yaml.Marshal(node)
}

type statusPayload struct {
	Status  string            `json:"status"`
	Message string            `json:"message,omitempty"`
	Errors  gojson.RawMessage `json:"errors,omitempty"`
}

func errorMapNode(errs *vouch.ErrorMap) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode}
	if errs == nil {
		return node
	}
	errs.Range(func(path string, messages []string) bool {
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for _, msg := range messages {
			seq.Content = append(seq.Content, scalarNode(msg))
		}
		appendEntry(node, path, seq)
		return true
	})
	return node
}

func appendEntry(mapping *yaml.Node, key string, value *yaml.Node) {
	mapping.Content = append(mapping.Content, scalarNode(key), value)
}

func scalarNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: s}
}
