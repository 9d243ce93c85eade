package main

import (
	"os"

	"github.com/yuminhwan/calculator/cmd"
)

func main() {
	app := cmd.NewCalculatorApp()
	os.Exit(app.Main(os.Args[1:]))
}
