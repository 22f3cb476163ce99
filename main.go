package main

import "goldtracker/cmd"

func main() {
	cmd.Execute()
}
