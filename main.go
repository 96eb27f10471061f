package main

import "github.com/tristendillon/related/cmd"

func main() {
	cmd.Execute()
}
