package main

import "github.com/pedraamn/poison-ivy-removal/cmd"

func main() {
	cmd.Execute()
}
