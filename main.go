package main

import (
	"github.com/jni/gaest/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
