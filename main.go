// SPDX-License-Identifier: MPL-2.0

package main

import cmd "jvmlaunch/cmd/jvmlaunch"

func main() {
	cmd.Execute()
}
