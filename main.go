package main

import "ordering-server/cmd"

func main() {
	cmd.Execute()
}
