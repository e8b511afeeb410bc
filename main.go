package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Canyonmnmn/create-vite/cmd"
)

func main() {
	res, err := cmd.Execute(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if res.Message != "" {
		fmt.Println(res.Message)
	}
	os.Exit(res.ExitCode)
}
