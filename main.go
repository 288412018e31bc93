package main

import "github.com/KaramelBytes/petreg/cmd"

func main() {
	cmd.Execute()
}
