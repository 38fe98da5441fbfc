package main

import "pizza-store/internal/cli"

func main() {
	cli.Execute()
}
