// Command forgectl is the command line front end for the ForgeKit
// toolchain. It forwards each subcommand to the forgekit binary and
// mirrors its exit code.
package main

import (
	"os"

	"github.com/ledokoz/forgekit-go/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
