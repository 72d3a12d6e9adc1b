// SPDX-License-Identifier: MIT

package main

import "github.com/katalvlaran/numlab/cmd"

func main() {
	cmd.Execute()
}
