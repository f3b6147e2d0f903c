// Command dataprep exposes the dataprep transform library as a CLI.
// Each transform is one subcommand grouped under cleaning, numeric,
// text, or struct; data arrives as trailing positional arguments and
// the result prints as a single "<Label>: <result>" line on stdout.
package main

func main() {
	Execute()
}
