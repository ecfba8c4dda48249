package main

import "github.com/rxscan/rxscan/cmd/rxscan/cmd"

func main() {
	cmd.Execute()
}
