// SPDX-License-Identifier: EPL-2.0

package palette

import "errors"

var (
	ErrUnknownScheme = errors.New("unknown colour scheme")
	ErrUnknownStyle  = errors.New("unknown rendering style")
	ErrUnknownFormat = errors.New("unknown scheme file format")
)
