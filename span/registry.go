// SPDX-License-Identifier: MIT

package span

import (
	"fmt"
	"reflect"
	"sync"

	"golang.org/x/exp/constraints"
)

// registry maps the reflect.Type of Range[T, G] to the max it is bound to.
// Keying on the full Range type keeps Range[uint8, G] and Range[uint32, G]
// independent, matching their distinct Index types.
var registry sync.Map // reflect.Type -> T

// bind records r's max for its brand, or panics if the brand is bound to a
// different max.
func bind[T constraints.Integer, G any](r Range[T, G]) {
	key := reflect.TypeFor[Range[T, G]]()
	prev, loaded := registry.LoadOrStore(key, r.max)
	if !loaded {
		return
	}
	if bound := prev.(T); bound != r.max {
		panic(fmt.Errorf("span.New(%v) for %v (bound to %v): %w", r.max, key, bound, ErrMarkerRebound))
	}
}
