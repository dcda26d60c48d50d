package main

import "github.com/scrapriq/dashboard/cmd/scraprctl/cmd"

func main() {
	cmd.Execute()
}
