package main

import (
	"os"

	"github.com/arthur-debert/greetings/cmd/greetings"
)

func main() {
	os.Exit(greetings.Execute())
}
