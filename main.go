package main

import "github.com/KaramelBytes/tabfit-cli/cmd"

func main() {
	cmd.Execute()
}
