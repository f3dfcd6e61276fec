// Command brawn merges a query sequence alignment into a reference
// alignment via profile-profile alignment.
package main

import "github.com/SJShaw/brawn/cmd"

func main() {
	cmd.Execute()
}
