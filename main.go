package main

import "agrimate/cmd"

func main() {
	cmd.Execute()
}
