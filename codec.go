// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sentinel

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Arrays encode as a sequence of their live prefix. Stale slots are never
// written. Decoding replaces the contents and live length; input longer than
// the capacity fails with ErrCapacity and leaves the Array unchanged.
// A null input is a no-op.

// MarshalJSON implements json.Marshaler.
func (a Array[S, T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Slice())
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Array[S, T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var elems []T
	if err := json.Unmarshal(data, &elems); err != nil {
		return fmt.Errorf("sentinel: decode json: %w", err)
	}
	return a.assignDecoded(elems)
}

// MarshalYAML implements yaml.Marshaler.
func (a Array[S, T]) MarshalYAML() (any, error) {
	return a.Slice(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (a *Array[S, T]) UnmarshalYAML(value *yaml.Node) error {
	if value.ShortTag() == "!!null" {
		return nil
	}
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("sentinel: decode yaml: line %d: expected a sequence", value.Line)
	}
	if len(value.Content) > a.Cap() {
		return fmt.Errorf("%w: %d elements, capacity %d", ErrCapacity, len(value.Content), a.Cap())
	}
	var elems []T
	if err := value.Decode(&elems); err != nil {
		return fmt.Errorf("sentinel: decode yaml: %w", err)
	}
	return a.assignDecoded(elems)
}

func (a *Array[S, T]) assignDecoded(elems []T) error {
	if len(elems) > a.Cap() {
		return fmt.Errorf("%w: %d elements, capacity %d", ErrCapacity, len(elems), a.Cap())
	}
	a.Assign(elems...)
	return nil
}
