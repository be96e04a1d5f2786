/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/SHOEB091/code-IDE/cmd"

func main() {
	cmd.Execute()
}
