package main

import "github.com/hypha/chaos-agent/pkg/cli"

func main() {
	cli.Execute()
}
