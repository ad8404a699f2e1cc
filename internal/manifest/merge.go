package manifest

import (
	"fmt"
	"reflect"

	"gopkg.in/yaml.v3"
)

// Merge combines a freshly generated manifest with a previously
// persisted one. Precedence is explicit and order-sensitive:
//
//   - scalar and object fields the fresh manifest defines always win;
//     the prior manifest only fills fields the generator left unset
//   - array fields are concatenated, fresh elements first, with prior
//     elements already present in the fresh array skipped so that
//     re-merging a manifest with itself is a no-op
//
// The merge works on the YAML document form of both manifests so the
// same rules apply uniformly at every nesting level.
func Merge(fresh, prior *Manifest) (*Manifest, error) {
	freshDoc, err := toDoc(fresh)
	if err != nil {
		return nil, err
	}
	priorDoc, err := toDoc(prior)
	if err != nil {
		return nil, err
	}

	data, err := yaml.Marshal(mergeValue(freshDoc, priorDoc))
	if err != nil {
		return nil, fmt.Errorf("failed to serialize merged manifest: %w", err)
	}
	var merged Manifest
	if err := yaml.Unmarshal(data, &merged); err != nil {
		return nil, fmt.Errorf("failed to rebuild merged manifest: %w", err)
	}
	return &merged, nil
}

func toDoc(m *Manifest) (map[string]interface{}, error) {
	data, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize manifest for merge: %w", err)
	}
	var doc map[string]interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to rebuild manifest for merge: %w", err)
	}
	return doc, nil
}

func mergeValue(fresh, prior interface{}) interface{} {
	if fresh == nil {
		return prior
	}
	if prior == nil {
		return fresh
	}

	if freshMap, ok := fresh.(map[string]interface{}); ok {
		priorMap, ok := prior.(map[string]interface{})
		if !ok {
			return fresh
		}
		merged := make(map[string]interface{}, len(freshMap)+len(priorMap))
		for k, v := range freshMap {
			merged[k] = mergeValue(v, priorMap[k])
		}
		for k, v := range priorMap {
			if _, defined := freshMap[k]; !defined {
				merged[k] = v
			}
		}
		return merged
	}

	if freshArr, ok := fresh.([]interface{}); ok {
		priorArr, ok := prior.([]interface{})
		if !ok {
			return fresh
		}
		merged := make([]interface{}, len(freshArr), len(freshArr)+len(priorArr))
		copy(merged, freshArr)
		for _, pv := range priorArr {
			if !containsValue(freshArr, pv) {
				merged = append(merged, pv)
			}
		}
		return merged
	}

	return fresh
}

func containsValue(arr []interface{}, v interface{}) bool {
	for _, e := range arr {
		if reflect.DeepEqual(e, v) {
			return true
		}
	}
	return false
}
