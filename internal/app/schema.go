package app

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/suxatcode/force-layout/layout"
)

const graphSchemaURL = "graph.schema.json"

const graphSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["nodes"],
  "properties": {
    "nodes": {
      "type": ["array", "null"],
      "items": {
        "type": "object",
        "required": ["name"],
        "properties": {
          "name": {"type": "string"},
          "radius": {"type": "number", "minimum": 0},
          "pinned": {"type": "boolean"},
          "pos": {
            "type": ["array", "null"],
            "items": {"type": "number"},
            "minItems": 2,
            "maxItems": 2
          }
        }
      }
    },
    "edges": {
      "type": ["array", "null"],
      "items": {
        "type": "object",
        "required": ["source", "target"],
        "properties": {
          "source": {"type": "integer", "minimum": 0},
          "target": {"type": "integer", "minimum": 0},
          "value": {"type": "number"}
        }
      }
    }
  }
}`

var compiledGraphSchema = jsonschema.MustCompileString(graphSchemaURL, graphSchema)

// DecodeGraph reads a JSON graph, checks it against the graph schema and
// validates its edges.
func DecodeGraph(r io.Reader) (*layout.Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read graph")
	}
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, errors.Wrap(err, "failed to decode graph json")
	}
	if err := compiledGraphSchema.Validate(v); err != nil {
		return nil, errors.Wrap(err, "graph does not match schema")
	}
	graph := &layout.Graph{}
	if err := json.Unmarshal(data, graph); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal graph")
	}
	if err := graph.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid graph")
	}
	return graph, nil
}
