// SPDX-License-Identifier: MPL-2.0

package main

import cmd "libscout/cmd/libscout"

func main() {
	cmd.Execute()
}
