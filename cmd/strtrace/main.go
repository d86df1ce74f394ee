package main

import (
	"strtrace/internal/app"
	"strtrace/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
