// SPDX-License-Identifier: MPL-2.0

package cmd

import "os"

// writeOutputFile overwrites path with data. The write target is always the
// user-supplied --output path, never anything derived from the serialized
// content.
func writeOutputFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}
