// Convert between human readable byte sizes and integer byte counts.
package main

import (
	"github.com/shaishab316/bytes.js/cmd"
	_ "github.com/shaishab316/bytes.js/cmd/format"
	_ "github.com/shaishab316/bytes.js/cmd/parse"
)

func main() {
	cmd.Main()
}
