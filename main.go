package main

import "github.com/tuannh982/linked-stack/cmd"

func main() {
	cmd.Execute()
}
