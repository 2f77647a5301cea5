// Demonstrates configuration resolution from defaults, file, environment
// and command line. Try:
//
//	go run ./example --help
//	NUMBER=42 go run ./example --str-arg hello --tags 'a,b\,c'
package main

import (
	"fmt"
	"log"

	"github.com/hegga/caep"
)

type Config struct {
	StrArg  string         `caep:"str_arg" help:"Required string argument" validate:"required"`
	Number  int            `caep:"number" help:"Integer with default value"`
	Enabled bool           `caep:"enabled" help:"Boolean that defaults to false"`
	Flag1   bool           `caep:"flag1" help:"Boolean that defaults to true"`
	Tags    []string       `caep:"tags" help:"Comma separated list of tags" min:"1"`
	Limits  map[string]int `caep:"limits" help:"Rate limits as name:value pairs"`
}

func main() {
	cfg := Config{
		Number: 1,
		Flag1:  true,
		Limits: map[string]int{"default": 100},
	}

	if err := caep.Quick(&cfg, "caep example program", "caep-example", "example.ini", "example"); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%+v\n", cfg)
}
