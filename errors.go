// SPDX-License-Identifier: EPL-2.0

package tensoraudio

import "errors"

// ErrUnknownFormat is returned when no decoder is registered for a file
// extension.
var ErrUnknownFormat = errors.New("unknown audio format")
