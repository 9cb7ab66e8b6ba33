package main

import "github.com/ytget/video-player/internal/cli"

var version = "dev"

func main() {
	cli.Execute(version)
}
