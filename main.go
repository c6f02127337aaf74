package main

import "provision-manager/cmd"

func main() {
	cmd.Execute()
}
