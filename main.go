// Copyright © 2025 The whyerr authors

package main

import "github.com/whyerr/whyerr/cmd"

func main() {
	cmd.Execute()
}
