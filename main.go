// Copyright
// SPDX-License-Identifier: MIT
// rtesession: terminal editing session with editor, source and config screens
package main

import "rtesession/cmd"

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cmd.SetVersion(version)
	cmd.Execute()
}
