package main

import "github.com/pfrederiksen/ploneconf-schedule/internal/cli"

func main() {
	cli.Execute()
}
