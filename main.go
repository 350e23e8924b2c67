// SPDX-License-Identifier: Apache-2.0
package main

import "github.com/Work-Fort/GpgAssist/cmd"

func main() {
	cmd.Execute()
}
