// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/configopt/configopt/cmd/configopt"

func main() {
	cmd.Execute()
}
