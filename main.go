package main

import "github.com/psmietanaa/Risp/cmd"

func main() {
	cmd.Execute()
}
