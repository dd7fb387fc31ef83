// SPDX-License-Identifier: MIT

package config

import "errors"

// ErrUnknownValue is returned for enumerated settings outside their set.
var ErrUnknownValue = errors.New("config: unknown value")
