package main

import "github.com/0Shafa/education-dashboard/cmd"

func main() {
	cmd.Execute()
}
