// Command bulkrename is the entrypoint for the bulkrename CLI.
package main

import "github.com/backmassage/bulkrename/internal/cli"

func main() {
	cli.Execute()
}
