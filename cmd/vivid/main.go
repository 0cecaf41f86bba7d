package main

import "github.com/vivid-arch/laravel-console/internal/cli"

func main() {
	cli.Execute()
}
