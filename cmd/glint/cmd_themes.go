package main

import (
	"fmt"

	"glint/internal/highlight"
)

func themesCmd() {
	for _, name := range highlight.Themes() {
		fmt.Println(name)
	}
}
