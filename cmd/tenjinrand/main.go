// Command tenjinrand prints constrained random values.
//
//	tenjinrand double --min -1 --max 1 --count 5
//	tenjinrand int32 --min 1 --max 6 --seed 42
//	tenjinrand string --length 16 --charset hex
//	tenjinrand string --min-length 4 --max-length 8 --allowed 'ACGT' --count 10
//
// Settings may also come from a config file (--config) or TENJIN_* variables.
package main

import (
	"os"

	"github.com/katalvlaran/tenjinx/cmd/tenjinrand/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
