package main

import "github.com/dbsmedya/greenshare/cmd/greenshare/cmd"

func main() {
	cmd.Execute()
}
