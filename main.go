// main.go
//
// Entry point; command handling lives in cmd/root.go

package main

import (
	"cpu-scheduler/cmd"
)

func main() {
	cmd.Execute()
}
