package main

import "github.com/trevorbaca/baca-sub024/cmd"

func main() {
	cmd.Execute()
}
