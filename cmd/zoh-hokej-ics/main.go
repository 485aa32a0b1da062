package main

import "github.com/pokys/zoh-hokej-ics/internal/cli"

func main() {
	cli.Execute()
}
