package main

import "github.com/peter-kozarec/linreg/internal/cli"

func main() {
	cli.Execute()
}
