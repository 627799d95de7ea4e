package main

import "github.com/arcutils/arc2bookmarks/cmd"

func main() {
	cmd.Execute()
}
