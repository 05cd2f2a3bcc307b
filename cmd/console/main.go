package main

import (
	"github.com/arturyumaev/casinodesk/internal/cli"
)

func main() {
	cli.Execute()
}
