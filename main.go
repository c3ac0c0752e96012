package main

import "github.com/chrisf1337/chrish/cmd"

func main() {
	cmd.Execute()
}
