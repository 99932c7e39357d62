package main

import (
	"github.com/timoth-y/fabnquery/cmd/fabnquery"
)

func main() {
	fabnquery.Execute()
}
