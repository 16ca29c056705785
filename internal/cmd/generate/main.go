// Command generate regenerates the generated source of the field
// package. It is invoked via go:generate from field/kind.go and writes
// relative to that package directory.
package main

import (
	"log"

	"github.com/calendrical/chrono-toolbox-go/internal/generate"
)

func main() {
	log.Println("generating field kinds...")
	if err := generate.KindsFile().Save("kind_gen.go"); err != nil {
		log.Fatal(err)
	}
	log.Println("done")
}
