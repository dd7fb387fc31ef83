// SPDX-License-Identifier: MIT

package span

import "errors"

// ErrMarkerRebound is the panic value cause when a marker type already bound
// to one bound is used to construct a range with another bound.
// It is a programmer error: the brand would no longer prove in-bounds-ness.
var ErrMarkerRebound = errors.New("span: marker already bound to a different max")

// ErrNegativeMax is the panic value cause when New is given a negative
// bound; [0, max) would otherwise wrap through every value of T.
var ErrNegativeMax = errors.New("span: negative max")
