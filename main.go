package main

import "github.com/vibast-solutions/ms-go-vps-showcase/cmd"

func main() {
	cmd.Execute()
}
