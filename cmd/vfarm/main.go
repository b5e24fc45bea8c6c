package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/akhilm2223/vertical-farmingg/pkg/ui"
)

func main() {
	a := &app{prompter: ui.PromptUI{}}
	if err := newRootCmd(a).Execute(); err != nil {
		if errors.Is(err, ui.ErrCancelled) {
			fmt.Fprintln(os.Stderr, "Operation cancelled.")
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, ui.StyleError.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}
