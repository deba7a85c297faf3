package main

import "xbps-tmpl/internal/cli"

func main() {
	cli.Execute()
}
