// Package schemas defines the shared data model of the assessment engine:
// requirement records as they arrive from the loader, maturity and context
// evaluation results, the dependency graph model, recommendations, and the
// dashboard snapshot. Everything here is plain serializable data; behavior
// lives in the internal engine packages.
package schemas

import jsoniter "github.com/json-iterator/go"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func jsonUnmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
