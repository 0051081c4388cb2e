package main

import (
	"context"

	"github.com/tsawler/soup/cmd/soup/commands"
)

func main() {
	commands.ExecuteContext(context.Background())
}
