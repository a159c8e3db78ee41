package main

import "github.com/bietkhonhungvandi212/pagesim/cmd/pagesim/cmd"

func main() {
	cmd.Execute()
}
