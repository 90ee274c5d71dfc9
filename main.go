// Command reagent augments phrase-similarity datasets by replacing chemical
// formula tokens with natural-language compound names.
package main

import "github.com/beakerlabs/reagent/cmd"

func main() {
	cmd.Execute()
}
