package main

import (
	"github.com/wundergraph/gqlast/cmd"
)

func main() {
	cmd.Execute()
}
