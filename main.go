package main

import "github.com/bgraf/pagetags/cmd"

func main() {
	cmd.Execute()
}
