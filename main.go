// main - main entry-point to visacheckout commands through cobra
// individual commands are outlined in ./cmd/
package main

import (
	"github.com/brave-intl/visacheckout/cmd"
	"github.com/brave-intl/visacheckout/libs/logging"

	// pull in the relay service, setup code is in init
	_ "github.com/brave-intl/visacheckout/services/visacheckout/cmd"
)

var (
	// variables will be overwritten at build time
	version   string
	commit    string
	buildTime string
)

func main() {
	defer func() {
		if logging.Writer != nil {
			logging.Writer.Close()
		}
	}()
	cmd.Execute(version, commit, buildTime)
}
