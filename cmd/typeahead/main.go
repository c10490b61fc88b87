package main

import "github.com/wxnacy/typeahead/internal/cli"

func main() {
	cli.Execute()
}
